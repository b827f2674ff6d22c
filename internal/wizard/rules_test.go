package wizard_test

import (
	"regexp"

	"easyrent-server/internal/wizard"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	goskema "github.com/reoring/goskema"
	g "github.com/reoring/goskema/dsl"
)

var _ = ginkgo.Describe("Schema", func() {
	ginkgo.DescribeTable("field checks",
		func(check wizard.Check, value any, expectedCode string) {
			schema := wizard.NewSchema(wizard.Object(wizard.Field("field", check)))
			issues := schema.Validate(wizard.NewDraft(map[string]any{"field": value}))

			if expectedCode == "" {
				gomega.Expect(issues).To(gomega.BeEmpty())
				return
			}
			gomega.Expect(issues).To(gomega.HaveLen(1))
			gomega.Expect(issues[0].Path).To(gomega.Equal("field"))
			gomega.Expect(issues[0].Code).To(gomega.Equal(expectedCode))
		},
		ginkgo.Entry("text within bounds", wizard.Text(5, 10), "hello", ""),
		ginkgo.Entry("text too short", wizard.Text(5, 10), "hey", wizard.CodeTooShort),
		ginkgo.Entry("text too long", wizard.Text(1, 3), "hello", wizard.CodeTooLong),
		ginkgo.Entry("text counts runes", wizard.Text(1, 5), "ação!", ""),
		ginkgo.Entry("text wrong type", wizard.Text(1, 5), 12.0, wizard.CodeInvalidType),
		ginkgo.Entry("positive", wizard.Positive(), 2.5, ""),
		ginkgo.Entry("positive zero", wizard.Positive(), 0.0, wizard.CodeTooSmall),
		ginkgo.Entry("positive numeric string", wizard.Positive(), "3", ""),
		ginkgo.Entry("positive not a number", wizard.Positive(), "abc", wizard.CodeInvalidType),
		ginkgo.Entry("between low", wizard.Between(1, 31), 0.0, wizard.CodeTooSmall),
		ginkgo.Entry("between high", wizard.Between(1, 31), 32.0, wizard.CodeTooBig),
		ginkgo.Entry("between inclusive", wizard.Between(0, 100), 100.0, ""),
		ginkgo.Entry("integer", wizard.Integer(), 2.0, ""),
		ginkgo.Entry("integer fraction", wizard.Integer(), 2.5, wizard.CodeInvalidType),
		ginkgo.Entry("enum", wizard.OneOf("badge", "key"), "key", ""),
		ginkgo.Entry("enum mismatch", wizard.OneOf("badge", "key"), "card", wizard.CodeInvalidEnum),
		ginkgo.Entry("pattern", wizard.Matches(regexp.MustCompile(`^\d{4}$`), "four digits"), "1234", ""),
		ginkgo.Entry("pattern mismatch", wizard.Matches(regexp.MustCompile(`^\d{4}$`), "four digits"), "12a4", wizard.CodeInvalidFormat),
		ginkgo.Entry("email", wizard.Email(), "jane@example.com", ""),
		ginkgo.Entry("email invalid", wizard.Email(), "jane@", wizard.CodeInvalidFormat),
		ginkgo.Entry("phone", wizard.Phone(), "+351912345678", ""),
		ginkgo.Entry("phone without plus", wizard.Phone(), "351912345678", wizard.CodeInvalidFormat),
		ginkgo.Entry("url", wizard.URL(), "https://cdn.example.com/a.pdf", ""),
		ginkgo.Entry("url invalid", wizard.URL(), "not a url", wizard.CodeInvalidFormat),
		ginkgo.Entry("date", wizard.Date(), "1990-05-17", ""),
		ginkgo.Entry("date timestamp", wizard.Date(), "1990-05-17T00:00:00Z", ""),
		ginkgo.Entry("date invalid", wizard.Date(), "17/05/1990", wizard.CodeInvalidDate),
		ginkgo.Entry("items", wizard.Items(1, 2), []any{"a"}, ""),
		ginkgo.Entry("items empty", wizard.Items(1, 2), []any{}, wizard.CodeTooSmall),
		ginkgo.Entry("items too many", wizard.Items(1, 2), []any{"a", "b", "c"}, wizard.CodeTooBig),
	)

	ginkgo.It("should report missing required fields at their path", func() {
		schema := wizard.NewSchema(g.Object().
			Field("address.street", wizard.Value(wizard.Text(5, 200))).Required().
			Field("address.city", wizard.Value(wizard.Text(2, 100))).Required().
			UnknownStrip().
			MustBuild())

		issues := schema.Validate(wizard.NewDraft(map[string]any{"address.city": "  "}))

		gomega.Expect(issues.Paths()).To(gomega.ConsistOf("address.street", "address.city"))
		gomega.Expect(issues.Map()["address.city"]).To(gomega.Equal("is required"))
	})

	ginkgo.It("should skip absent optional fields but check present ones", func() {
		schema := wizard.NewSchema(wizard.Object(wizard.Optional("garden_area", wizard.Min(0))))

		gomega.Expect(schema.Validate(wizard.NewDraft(nil))).To(gomega.BeEmpty())
		gomega.Expect(schema.Validate(wizard.NewDraft(map[string]any{"garden_area": -1.0}))).To(gomega.HaveLen(1))
	})

	ginkgo.Context("booleans", func() {
		var schema wizard.Schema

		ginkgo.BeforeEach(func() {
			schema = wizard.NewSchema(wizard.Object(wizard.Bool("has_garden"), wizard.Bool("has_garage")))
		})

		ginkgo.It("should default absent booleans to false", func() {
			draft := wizard.NewDraft(map[string]any{"has_garage": true})

			gomega.Expect(schema.Validate(draft)).To(gomega.BeEmpty())

			normalized := schema.Normalize(draft)
			value, ok := normalized.Get("has_garden")
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(value).To(gomega.Equal(false))
			gomega.Expect(normalized.Bool("has_garage")).To(gomega.BeTrue())
		})

		ginkgo.It("should not mutate the validated draft", func() {
			draft := wizard.NewDraft(nil)
			schema.Validate(draft)

			gomega.Expect(draft.Has("has_garden")).To(gomega.BeFalse())
		})

		ginkgo.It("should coerce boolean strings", func() {
			normalized := schema.Normalize(wizard.NewDraft(map[string]any{"has_garden": "true"}))

			value, _ := normalized.Get("has_garden")
			gomega.Expect(value).To(gomega.Equal(true))
		})

		ginkgo.It("should reject non boolean values", func() {
			issues := schema.Validate(wizard.NewDraft(map[string]any{"has_garden": "yes"}))

			gomega.Expect(issues).To(gomega.HaveLen(1))
			gomega.Expect(issues[0].Code).To(gomega.Equal(wizard.CodeInvalidType))
		})
	})

	ginkgo.Context("Switch", func() {
		var schema wizard.Schema

		ginkgo.BeforeEach(func() {
			schema = wizard.Switch("type", map[string]goskema.Schema[map[string]any]{
				"garage": wizard.Object(wizard.Field("specificFields.parkingSpots", wizard.Positive())),
				"land":   wizard.Object(wizard.Field("specificFields.soilType", wizard.OneOf("clay", "sand"))),
			})
		})

		ginkgo.It("should validate only the selected variant", func() {
			issues := schema.Validate(wizard.NewDraft(map[string]any{
				"type":                        "garage",
				"specificFields.parkingSpots": 2.0,
			}))

			gomega.Expect(issues).To(gomega.BeEmpty())
		})

		ginkgo.It("should report the selected variant's missing fields", func() {
			issues := schema.Validate(wizard.NewDraft(map[string]any{"type": "land"}))

			gomega.Expect(issues.Paths()).To(gomega.ConsistOf("specificFields.soilType"))
		})

		ginkgo.It("should require the discriminant", func() {
			issues := schema.Validate(wizard.NewDraft(nil))

			gomega.Expect(issues).To(gomega.HaveLen(1))
			gomega.Expect(issues[0].Path).To(gomega.Equal("type"))
			gomega.Expect(issues[0].Code).To(gomega.Equal(wizard.CodeRequired))
		})

		ginkgo.It("should reject unknown discriminants", func() {
			issues := schema.Validate(wizard.NewDraft(map[string]any{"type": "castle"}))

			gomega.Expect(issues).To(gomega.HaveLen(1))
			gomega.Expect(issues[0].Path).To(gomega.Equal("type"))
			gomega.Expect(issues[0].Code).To(gomega.Equal(wizard.CodeInvalidEnum))
			gomega.Expect(issues[0].Message).To(gomega.Equal("must be one of garage, land"))
		})
	})

	ginkgo.Context("WhenPresent", func() {
		var schema wizard.Schema

		ginkgo.BeforeEach(func() {
			schema = wizard.WhenPresent("guarantor", wizard.NewSchema(wizard.Object(
				wizard.Field("guarantor.name", wizard.Text(1, 100)),
				wizard.Field("guarantor.email", wizard.Email()),
			)))
		})

		ginkgo.It("should accept an absent section", func() {
			gomega.Expect(schema.Validate(wizard.NewDraft(nil))).To(gomega.BeEmpty())
			gomega.Expect(schema.Validate(wizard.NewDraft(map[string]any{"guarantor": map[string]any{}}))).To(gomega.BeEmpty())
		})

		ginkgo.It("should validate a present section", func() {
			issues := schema.Validate(wizard.NewDraft(map[string]any{"guarantor.name": "John"}))

			gomega.Expect(issues.Paths()).To(gomega.ConsistOf("guarantor.email"))
		})
	})

	ginkgo.It("should extend schemas", func() {
		a := wizard.NewSchema(wizard.Object(wizard.Field("a", wizard.Text(1, 5))))
		b := wizard.NewSchema(wizard.Object(wizard.Field("b", wizard.Text(1, 5))))

		issues := a.Extend(b).Validate(wizard.NewDraft(nil))
		gomega.Expect(issues.Paths()).To(gomega.ConsistOf("a", "b"))
	})

	ginkgo.It("should describe validation errors", func() {
		err := &wizard.ValidationError{Section: "general", Issues: wizard.Issues{{Path: "title"}, {Path: "title"}, {Path: "photos"}}}

		gomega.Expect(err.Error()).To(gomega.Equal("section general is invalid: title, photos"))
	})
})
