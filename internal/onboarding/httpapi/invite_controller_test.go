package httpapi_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"easyrent-server/internal/infra/httpserver"
	"easyrent-server/internal/infra/utils"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
	onboarding_httpapi "easyrent-server/internal/onboarding/httpapi"
	onboarding_httpapi_internal "easyrent-server/internal/onboarding/httpapi/internal"
	onboarding_usecases "easyrent-server/internal/onboarding/usecases"
	propertyUsecases "easyrent-server/internal/property/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
	"easyrent-server/internal/submission"
	mockusecases "easyrent-server/test/unit/doubles/onboarding/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("InviteController", func() {
	var (
		mockInvites *mockusecases.MockInviteService
		mockAccepts *mockusecases.MockAcceptService
		mockTenants *mockusecases.MockTenantService
		ctrl        *gomock.Controller
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
		landlord    shareddomain.Principal
	)

	authenticated := func(method, target, body string) *http.Request {
		request := httptest.NewRequest(method, target, strings.NewReader(body))
		ctx := shareddomain.ContextWithPrincipal(request.Context(), landlord)
		return request.WithContext(ctx)
	}

	inviteBody := func(start, end string) string {
		today := utils.Today(nil)
		if start == "" {
			start = today.AddMonths(1).String()
		}
		if end == "" {
			end = today.AddMonths(13).String()
		}
		return fmt.Sprintf(`{
			"propertyId": "property-1",
			"firstName": "Jane",
			"lastName": "Doe",
			"email": "jane@example.com",
			"phone": "+33612345678",
			"leaseStartDate": %q,
			"leaseEndDate": %q,
			"rentAmount": 850,
			"deposit": 1700.5
		}`, start, end)
	}

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockInvites = mockusecases.NewMockInviteService(ctrl)
		mockAccepts = mockusecases.NewMockAcceptService(ctrl)
		mockTenants = mockusecases.NewMockTenantService(ctrl)
		router = http.NewServeMux()
		onboarding_httpapi.NewInviteController(mockInvites, mockAccepts, mockTenants).AddRoutes(router)
		recorder = httptest.NewRecorder()
		landlord = shareddomain.Principal{UserID: "landlord-1", Email: "owner@example.com", Name: "Olivia Owner"}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("createInvite", func() {
		It("should build the invite for the landlord", func() {
			mockInvites.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, invite onboardingDomain.Invite) (onboardingDomain.Invite, error) {
					Expect(invite.LandlordID).To(Equal(landlord.UserID))
					Expect(invite.LandlordEmail).To(Equal("owner@example.com"))
					Expect(invite.DepositAmount).To(Equal(1700.5))
					Expect(invite.Token).NotTo(BeEmpty())
					invite.EmailSent = true
					return invite, nil
				})

			router.ServeHTTP(recorder, authenticated(http.MethodPost, "/v1/invites", inviteBody("", "")))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			var response onboarding_httpapi_internal.InviteResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Status).To(Equal("pending"))
			Expect(response.EmailSent).To(BeTrue())
		})

		It("should report the offending field", func() {
			start := utils.Today(nil).AddMonths(1).String()

			router.ServeHTTP(recorder, authenticated(http.MethodPost, "/v1/invites", inviteBody(start, start)))

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
			var response httpserver.ErrorResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Details).To(HaveKeyWithValue("leaseEndDate", "end must be after start"))
		})

		It("should refuse a leased property", func() {
			mockInvites.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).
				Return(onboardingDomain.Invite{}, propertyUsecases.ErrPropertyUnavailable)

			router.ServeHTTP(recorder, authenticated(http.MethodPost, "/v1/invites", inviteBody("", "")))

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})

		It("should require a signed in landlord", func() {
			request := httptest.NewRequest(http.MethodPost, "/v1/invites", strings.NewReader(inviteBody("", "")))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Context("listInvites", func() {
		It("should page the landlord's invites", func() {
			mockInvites.EXPECT().ListInvites(gomock.Any(), landlord.UserID, onboarding_usecases.Pagination{Limit: 10, Offset: 10}).
				Return([]onboardingDomain.Invite{{ID: "invite-1", Status: onboardingDomain.InvitePending}}, 11, nil)

			router.ServeHTTP(recorder, authenticated(http.MethodGet, "/v1/invites?page=2&limit=10", ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"invite-1"`))
		})
	})

	Context("verifyInvite", func() {
		It("should not expose the token", func() {
			mockInvites.EXPECT().VerifyInvite(gomock.Any(), "jane@example.com", "token-1").
				Return(onboardingDomain.Invite{ID: "invite-1", Email: "jane@example.com", Token: "token-1"}, nil)

			request := httptest.NewRequest(http.MethodPost, "/v1/invites/verify",
				strings.NewReader(`{"email":"jane@example.com","token":"token-1"}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).NotTo(ContainSubstring("token-1"))
		})

		It("should answer 410 for expired invites", func() {
			mockInvites.EXPECT().VerifyInvite(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(onboardingDomain.Invite{}, onboarding_usecases.ErrInviteExpired)

			request := httptest.NewRequest(http.MethodPost, "/v1/invites/verify", strings.NewReader(`{"email":"a@b.co","token":"t"}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusGone))
		})

		It("should answer 404 for unknown links", func() {
			mockInvites.EXPECT().VerifyInvite(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(onboardingDomain.Invite{}, onboarding_usecases.ErrInviteNotFound)

			request := httptest.NewRequest(http.MethodPost, "/v1/invites/verify", strings.NewReader(`{"email":"a@b.co","token":"t"}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("acceptInvite", func() {
		It("should reply with the created tenant and lease", func() {
			mockAccepts.EXPECT().AcceptInvite(gomock.Any(), onboarding_usecases.AcceptRequest{
				Email: "jane@example.com", Token: "token-1", Phone: "+33700000000",
			}).Return(onboarding_usecases.Acceptance{InviteID: "invite-1", TenantID: "tenant-1", LeaseID: "lease-1"}, nil)

			request := httptest.NewRequest(http.MethodPost, "/v1/invites/accept",
				strings.NewReader(`{"email":"jane@example.com","token":"token-1","phone":"+33700000000"}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			var response onboarding_httpapi_internal.AcceptResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.LeaseID).To(Equal("lease-1"))
		})

		It("should answer 409 when the lease insert finds the property taken", func() {
			err := &submission.Error{Phase: submission.PhaseDependents, Op: "insert_lease", Err: propertyUsecases.ErrPropertyUnavailable}
			mockAccepts.EXPECT().AcceptInvite(gomock.Any(), gomock.Any()).Return(onboarding_usecases.Acceptance{}, err)

			request := httptest.NewRequest(http.MethodPost, "/v1/invites/accept", strings.NewReader(`{"email":"a@b.co","token":"t"}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})

		It("should hide unexpected failures", func() {
			mockAccepts.EXPECT().AcceptInvite(gomock.Any(), gomock.Any()).
				Return(onboarding_usecases.Acceptance{}, errors.New("connection reset"))

			request := httptest.NewRequest(http.MethodPost, "/v1/invites/accept", strings.NewReader(`{"email":"a@b.co","token":"t"}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).NotTo(ContainSubstring("connection reset"))
		})
	})

	Context("listTenants", func() {
		It("should list the landlord's tenants", func() {
			mockTenants.EXPECT().ListTenants(gomock.Any(), landlord.UserID, gomock.Any()).
				Return([]onboardingDomain.Tenant{{ID: "tenant-1", FirstName: "Jane"}}, 1, nil)

			router.ServeHTTP(recorder, authenticated(http.MethodGet, "/v1/tenants", ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"firstName":"Jane"`))
		})
	})
})
