package wizard

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"easyrent-server/internal/infra/utils"

	goskema "github.com/reoring/goskema"
	g "github.com/reoring/goskema/dsl"
	js "github.com/reoring/goskema/jsonschema"
)

// Check inspects a present value and reports a code and message when it is
// not acceptable.
type Check func(value any) (code, message string, ok bool)

// Schema validates a draft with goskema object schemas. Objects are keyed by
// dotted draft paths and run against the flattened draft, so issue pointers
// like /address.street map straight back to draft paths.
type Schema struct {
	parts []part
}

type part struct {
	object goskema.Schema[map[string]any]
	// variants lists the discriminants of a union part.
	variants []string
	// when names a section that must hold data for the part to apply.
	when string
}

// NewSchema wraps object schemas built with dsl.Object(). They must strip
// unknown keys since every part sees the whole draft.
func NewSchema(objects ...goskema.Schema[map[string]any]) Schema {
	parts := make([]part, len(objects))
	for i, o := range objects {
		parts[i] = part{object: o}
	}
	return Schema{parts: parts}
}

// Switch selects the object schema of the variant named by the value at
// discriminator. Unknown or missing discriminants are reported on it.
func Switch(discriminator string, variants map[string]goskema.Schema[map[string]any]) Schema {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	slices.Sort(names)

	options := make([]g.UnionVariant, len(names))
	for i, name := range names {
		options[i] = g.Variant(name, variants[name])
	}
	union := g.Object().Discriminator(discriminator).OneOf(options...).MustBuild()

	return Schema{parts: []part{{object: union, variants: names}}}
}

// WhenPresent applies the schema only when the object at path holds data,
// as for an optional nested section.
func WhenPresent(path string, schema Schema) Schema {
	parts := make([]part, len(schema.parts))
	for i, p := range schema.parts {
		p.when = path
		parts[i] = p
	}
	return Schema{parts: parts}
}

// Extend returns a schema with the parts of both.
func (s Schema) Extend(other Schema) Schema {
	parts := make([]part, 0, len(s.parts)+len(other.parts))
	parts = append(parts, s.parts...)
	parts = append(parts, other.parts...)
	return Schema{parts: parts}
}

func (s Schema) Validate(d Draft) Issues {
	ctx := context.Background()
	flat := flatten(d)

	var issues Issues
	for _, p := range s.parts {
		if !p.applies(d) {
			continue
		}
		if _, err := p.object.Parse(ctx, flat); err != nil {
			issues = append(issues, p.issues(err)...)
		}
	}
	return issues
}

// Normalize writes the booleans the schema defaults or coerces back into the
// draft. Parts that fail validation are left alone.
func (s Schema) Normalize(d Draft) Draft {
	ctx := context.Background()
	flat := flatten(d)

	for _, p := range s.parts {
		if !p.applies(d) {
			continue
		}
		parsed, err := p.object.Parse(ctx, flat)
		if err != nil {
			continue
		}
		for path, value := range parsed {
			if b, ok := value.(bool); ok {
				d = d.Set(path, b)
			}
		}
	}
	return d
}

func (p part) applies(d Draft) bool {
	if p.when == "" {
		return true
	}
	value, ok := d.Get(p.when)
	if !ok {
		return false
	}
	m, isMap := value.(map[string]any)
	return !isMap || len(m) > 0
}

func (p part) issues(err error) Issues {
	found, ok := goskema.AsIssues(err)
	if !ok {
		return Issues{{Code: CodeInvalidValue, Message: err.Error()}}
	}

	out := make(Issues, 0, len(found))
	for _, it := range found {
		issue := Issue{Path: strings.TrimPrefix(it.Path, "/"), Code: it.Code, Message: it.Message}
		switch it.Code {
		case goskema.CodeRequired, goskema.CodeDiscriminatorMissing:
			issue.Code, issue.Message = CodeRequired, "is required"
		case goskema.CodeDiscriminatorUnknown:
			issue.Code, issue.Message = CodeInvalidEnum, "must be one of "+strings.Join(p.variants, ", ")
		}
		out = append(out, issue)
	}
	return out
}

// flatten keys every leaf of the draft by its dotted path. Arrays are
// leaves; empty objects vanish.
func flatten(d Draft) map[string]any {
	out := map[string]any{}
	flattenInto("", d.Map(), out)
	return out
}

func flattenInto(prefix string, m map[string]any, out map[string]any) {
	for key, value := range m {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flattenInto(path, nested, out)
			continue
		}
		out[path] = value
	}
}

// FieldSpec declares one field of an object built by Object.
type FieldSpec struct {
	Path       string
	Adapter    g.AnyAdapter
	Required   bool
	Default    any
	hasDefault bool
}

// Object builds an object schema from field specs, for field lists that are
// assembled in code rather than chained.
func Object(fields ...FieldSpec) goskema.Schema[map[string]any] {
	b := g.Object().UnknownStrip()
	for _, f := range fields {
		step := b.Field(f.Path, f.Adapter)
		switch {
		case f.Required:
			step.Required()
		case f.hasDefault:
			step.Default(f.Default)
		}
	}
	return b.MustBuild()
}

// Field requires a value at path and applies checks to it.
func Field(path string, checks ...Check) FieldSpec {
	return FieldSpec{Path: path, Adapter: Value(checks...), Required: true}
}

// Optional applies checks only when a value is present.
func Optional(path string, checks ...Check) FieldSpec {
	return FieldSpec{Path: path, Adapter: OptionalValue(checks...)}
}

// Bool accepts true or false and defaults an absent value to false.
func Bool(path string) FieldSpec {
	return FieldSpec{Path: path, Adapter: Flag(), Default: false, hasDefault: true}
}

// Value is a field that must not be blank and passes every check.
func Value(checks ...Check) g.AnyAdapter {
	return g.SchemaOf[any](valueSchema{checks: checks})
}

// OptionalValue accepts a blank value and checks anything else.
func OptionalValue(checks ...Check) g.AnyAdapter {
	return g.SchemaOf[any](valueSchema{checks: checks, blankOK: true})
}

// Flag accepts true or false, also as strings. Pair it with Default(false).
func Flag() g.AnyAdapter {
	return g.SchemaOf[any](flagSchema{})
}

type valueSchema struct {
	checks  []Check
	blankOK bool
}

var _ goskema.Schema[any] = valueSchema{}

func (s valueSchema) Parse(ctx context.Context, v any) (any, error) {
	if err := s.ValidateValue(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s valueSchema) ParseWithMeta(ctx context.Context, v any) (goskema.Decoded[any], error) {
	parsed, err := s.Parse(ctx, v)
	return goskema.Decoded[any]{Value: parsed, Presence: goskema.PresenceMap{"/": goskema.PresenceSeen}}, err
}

func (valueSchema) TypeCheck(context.Context, any) error { return nil }

func (s valueSchema) RuleCheck(ctx context.Context, v any) error {
	return s.ValidateValue(ctx, v)
}

func (s valueSchema) Validate(ctx context.Context, v any) error {
	return s.ValidateValue(ctx, v)
}

func (s valueSchema) ValidateValue(_ context.Context, v any) error {
	if isBlank(v) {
		if s.blankOK {
			return nil
		}
		return rootIssue(CodeRequired, "is required")
	}
	for _, check := range s.checks {
		if code, message, ok := check(v); !ok {
			return rootIssue(code, message)
		}
	}
	return nil
}

func (valueSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{}, nil }

type flagSchema struct{}

var _ goskema.Schema[any] = flagSchema{}

func (flagSchema) Parse(_ context.Context, v any) (any, error) {
	b, ok := toBool(v)
	if !ok {
		return nil, rootIssue(CodeInvalidType, "must be true or false")
	}
	return b, nil
}

func (s flagSchema) ParseWithMeta(ctx context.Context, v any) (goskema.Decoded[any], error) {
	parsed, err := s.Parse(ctx, v)
	return goskema.Decoded[any]{Value: parsed, Presence: goskema.PresenceMap{"/": goskema.PresenceSeen}}, err
}

func (flagSchema) TypeCheck(context.Context, any) error { return nil }

func (s flagSchema) RuleCheck(ctx context.Context, v any) error {
	return s.ValidateValue(ctx, v)
}

func (s flagSchema) Validate(ctx context.Context, v any) error {
	return s.ValidateValue(ctx, v)
}

func (s flagSchema) ValidateValue(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

func (flagSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

func rootIssue(code, message string) goskema.Issues {
	return goskema.Issues{{Path: "/", Code: code, Message: message}}
}

func isBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

func Text(min, max int) Check {
	return func(value any) (string, string, bool) {
		s, ok := value.(string)
		if !ok {
			return CodeInvalidType, "must be a string", false
		}
		n := utf8.RuneCountInString(strings.TrimSpace(s))
		if n < min {
			return CodeTooShort, fmt.Sprintf("must be at least %d characters", min), false
		}
		if max > 0 && n > max {
			return CodeTooLong, fmt.Sprintf("must be at most %d characters", max), false
		}
		return "", "", true
	}
}

func Number() Check {
	return func(value any) (string, string, bool) {
		if _, ok := toFloat(value); !ok {
			return CodeInvalidType, "must be a number", false
		}
		return "", "", true
	}
}

func Integer() Check {
	return func(value any) (string, string, bool) {
		f, ok := toFloat(value)
		if !ok || f != float64(int64(f)) {
			return CodeInvalidType, "must be a whole number", false
		}
		return "", "", true
	}
}

func Positive() Check {
	return func(value any) (string, string, bool) {
		f, ok := toFloat(value)
		if !ok {
			return CodeInvalidType, "must be a number", false
		}
		if f <= 0 {
			return CodeTooSmall, "must be greater than 0", false
		}
		return "", "", true
	}
}

func Min(min float64) Check {
	return func(value any) (string, string, bool) {
		f, ok := toFloat(value)
		if !ok {
			return CodeInvalidType, "must be a number", false
		}
		if f < min {
			return CodeTooSmall, fmt.Sprintf("must be at least %s", formatNumber(min)), false
		}
		return "", "", true
	}
}

func Max(max float64) Check {
	return func(value any) (string, string, bool) {
		f, ok := toFloat(value)
		if !ok {
			return CodeInvalidType, "must be a number", false
		}
		if f > max {
			return CodeTooBig, fmt.Sprintf("must be at most %s", formatNumber(max)), false
		}
		return "", "", true
	}
}

func Between(min, max float64) Check {
	lower, upper := Min(min), Max(max)
	return func(value any) (string, string, bool) {
		if code, message, ok := lower(value); !ok {
			return code, message, false
		}
		return upper(value)
	}
}

func OneOf(allowed ...string) Check {
	return func(value any) (string, string, bool) {
		s, ok := value.(string)
		if !ok || !slices.Contains(allowed, s) {
			return CodeInvalidEnum, "must be one of " + strings.Join(allowed, ", "), false
		}
		return "", "", true
	}
}

func Matches(pattern *regexp.Regexp, message string) Check {
	return func(value any) (string, string, bool) {
		s, ok := value.(string)
		if !ok || !pattern.MatchString(strings.TrimSpace(s)) {
			return CodeInvalidFormat, message, false
		}
		return "", "", true
	}
}

func Email() Check {
	return func(value any) (string, string, bool) {
		s, ok := value.(string)
		if !ok || !utils.IsValidEmail(strings.TrimSpace(s)) {
			return CodeInvalidFormat, "must be a valid email", false
		}
		return "", "", true
	}
}

func Phone() Check {
	return func(value any) (string, string, bool) {
		s, ok := value.(string)
		if !ok || !utils.IsValidPhone(strings.TrimSpace(s)) {
			return CodeInvalidFormat, "must be a valid phone number in international format", false
		}
		return "", "", true
	}
}

func URL() Check {
	return func(value any) (string, string, bool) {
		s, ok := value.(string)
		if !ok {
			return CodeInvalidFormat, "must be a valid URL", false
		}
		u, err := url.Parse(s)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return CodeInvalidFormat, "must be a valid URL", false
		}
		return "", "", true
	}
}

func Date() Check {
	return func(value any) (string, string, bool) {
		if _, ok := ParseDateValue(value); !ok {
			return CodeInvalidDate, "must be a valid date", false
		}
		return "", "", true
	}
}

// Items bounds the number of elements of an array. max <= 0 means unbounded.
func Items(min, max int) Check {
	return func(value any) (string, string, bool) {
		items, ok := value.([]any)
		if !ok {
			return CodeInvalidType, "must be a list", false
		}
		if len(items) < min {
			return CodeTooSmall, fmt.Sprintf("must contain at least %d item(s)", min), false
		}
		if max > 0 && len(items) > max {
			return CodeTooBig, fmt.Sprintf("must contain at most %d item(s)", max), false
		}
		return "", "", true
	}
}

// ParseDateValue accepts YYYY-MM-DD and RFC 3339 timestamps.
func ParseDateValue(value any) (utils.Date, bool) {
	s, ok := value.(string)
	if !ok {
		return utils.Date{}, false
	}
	s = strings.TrimSpace(s)
	if d, err := utils.ParseDate(s); err == nil {
		return d, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return utils.NewDate(t.Year(), t.Month(), t.Day()), true
	}
	return utils.Date{}, false
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
