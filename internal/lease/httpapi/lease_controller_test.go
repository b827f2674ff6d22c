package httpapi_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"easyrent-server/internal/infra/utils"
	leaseDomain "easyrent-server/internal/lease/domain"
	lease_httpapi "easyrent-server/internal/lease/httpapi"
	lease_httpapi_internal "easyrent-server/internal/lease/httpapi/internal"
	lease_usecases "easyrent-server/internal/lease/usecases"
	propertyUsecases "easyrent-server/internal/property/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
	mockusecases "easyrent-server/test/unit/doubles/lease/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("LeaseController", func() {
	var (
		mockService *mockusecases.MockLeaseService
		ctrl        *gomock.Controller
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
		ownerID     shareddomain.ID
	)

	authenticated := func(method, target, body string) *http.Request {
		request := httptest.NewRequest(method, target, strings.NewReader(body))
		ctx := shareddomain.ContextWithPrincipal(request.Context(), shareddomain.Principal{UserID: ownerID})
		return request.WithContext(ctx)
	}

	lease := func() leaseDomain.Lease {
		return leaseDomain.Lease{
			ID:         "lease-1",
			Version:    1,
			OwnerID:    ownerID,
			TenantID:   "tenant-1",
			PropertyID: "property-1",
			Term: leaseDomain.LeaseTerm{
				Start: utils.NewDate(2025, time.June, 1),
				End:   utils.NewDate(2026, time.May, 31),
			},
			RentAmount:    900,
			PaymentDueDay: 1,
			Status:        leaseDomain.StatusActive,
		}
	}

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockLeaseService(ctrl)
		router = http.NewServeMux()
		lease_httpapi.NewLeaseController(mockService).AddRoutes(router)
		recorder = httptest.NewRecorder()
		ownerID = "owner-1"
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("createLease", func() {
		It("should stamp the owner and reply with the lease", func() {
			mockService.EXPECT().CreateLease(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, l leaseDomain.Lease) error {
				Expect(l.OwnerID).To(Equal(ownerID))
				Expect(l.Term.End.String()).To(Equal("2026-05-31"))
				Expect(l.Status).To(Equal(leaseDomain.StatusActive))
				return nil
			})

			body := `{"tenant_id":"tenant-1","property_id":"property-1","start_date":"2025-06-01","end_date":"2026-05-31","rent_amount":900,"deposit_amount":1800,"status":"active"}`
			router.ServeHTTP(recorder, authenticated("POST", "/v1/leases", body))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			var response lease_httpapi_internal.LeaseResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.PaymentDueDay).To(Equal(1))
			Expect(response.StartDate.String()).To(Equal("2025-06-01"))
		})

		It("should reject a term shorter than a month", func() {
			body := `{"tenant_id":"tenant-1","property_id":"property-1","start_date":"2025-06-01","end_date":"2025-06-30"}`
			router.ServeHTTP(recorder, authenticated("POST", "/v1/leases", body))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(recorder.Body.String()).To(ContainSubstring(leaseDomain.ErrTermTooShort.Error()))
		})

		It("should reply conflict when the property is leased", func() {
			mockService.EXPECT().CreateLease(gomock.Any(), gomock.Any()).Return(lease_usecases.ErrPropertyLeased)

			body := `{"tenant_id":"tenant-1","property_id":"property-1","start_date":"2025-06-01","end_date":"2026-05-31","status":"active"}`
			router.ServeHTTP(recorder, authenticated("POST", "/v1/leases", body))

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})

		It("should reply not found for foreign properties", func() {
			mockService.EXPECT().CreateLease(gomock.Any(), gomock.Any()).Return(propertyUsecases.ErrPropertyNotFound)

			body := `{"tenant_id":"tenant-1","property_id":"property-9","start_date":"2025-06-01","end_date":"2026-05-31"}`
			router.ServeHTTP(recorder, authenticated("POST", "/v1/leases", body))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("should require a principal", func() {
			request := httptest.NewRequest("POST", "/v1/leases", strings.NewReader(`{}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Context("listLeases", func() {
		It("should page with the requested parameters", func() {
			mockService.EXPECT().
				ListLeases(gomock.Any(), ownerID, lease_usecases.Pagination{Limit: 10, Offset: 10}).
				Return([]leaseDomain.Lease{lease()}, 11, nil)

			router.ServeHTTP(recorder, authenticated("GET", "/v1/leases?page=2&limit=10", ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("should hide internal errors", func() {
			mockService.EXPECT().ListLeases(gomock.Any(), ownerID, gomock.Any()).Return(nil, 0, errors.New("db down"))

			router.ServeHTTP(recorder, authenticated("GET", "/v1/leases", ""))

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).NotTo(ContainSubstring("db down"))
		})
	})

	Context("terminateLease", func() {
		It("should reply with the terminated lease", func() {
			terminated := lease()
			terminated.Status = leaseDomain.StatusTerminated
			mockService.EXPECT().TerminateLease(gomock.Any(), ownerID, shareddomain.ID("lease-1")).Return(terminated, nil)

			router.ServeHTTP(recorder, authenticated("POST", "/v1/leases/lease-1/terminate", ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"status":"terminated"`))
		})

		It("should reply conflict for closed leases", func() {
			mockService.EXPECT().TerminateLease(gomock.Any(), ownerID, shareddomain.ID("lease-1")).Return(leaseDomain.Lease{}, leaseDomain.ErrInvalidTransition)

			router.ServeHTTP(recorder, authenticated("POST", "/v1/leases/lease-1/terminate", ""))

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("getLease and deleteLease", func() {
		It("should reply not found", func() {
			mockService.EXPECT().GetLease(gomock.Any(), ownerID, shareddomain.ID("lease-9")).Return(leaseDomain.Lease{}, lease_usecases.ErrLeaseNotFound)

			router.ServeHTTP(recorder, authenticated("GET", "/v1/leases/lease-9", ""))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("should reply no content on delete", func() {
			mockService.EXPECT().DeleteLease(gomock.Any(), ownerID, shareddomain.ID("lease-1")).Return(nil)

			router.ServeHTTP(recorder, authenticated("DELETE", "/v1/leases/lease-1", ""))

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})
})
