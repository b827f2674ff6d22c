package httpapi_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	maintenanceDomain "easyrent-server/internal/maintenance/domain"
	maintenance_httpapi "easyrent-server/internal/maintenance/httpapi"
	maintenance_httpapi_internal "easyrent-server/internal/maintenance/httpapi/internal"
	maintenance_usecases "easyrent-server/internal/maintenance/usecases"
	propertyUsecases "easyrent-server/internal/property/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
	mockusecases "easyrent-server/test/unit/doubles/maintenance/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("RequestController", func() {
	var (
		mockService *mockusecases.MockRequestService
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

	maintenanceRequest := func() maintenanceDomain.Request {
		return maintenanceDomain.Request{
			ID:          "request-1",
			Version:     1,
			OwnerID:     ownerID,
			PropertyID:  "property-1",
			Description: "Leaking tap",
			Priority:    maintenanceDomain.PriorityHigh,
			Status:      maintenanceDomain.StatusOpen,
		}
	}

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockRequestService(ctrl)
		router = http.NewServeMux()
		maintenance_httpapi.NewRequestController(mockService).AddRoutes(router)
		recorder = httptest.NewRecorder()
		ownerID = "owner-1"
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("createRequest", func() {
		It("should create an open request for the owner", func() {
			mockService.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, request maintenanceDomain.Request) error {
					Expect(request.OwnerID).To(Equal(ownerID))
					Expect(request.Priority).To(Equal(maintenanceDomain.PriorityUrgent))
					Expect(request.Status).To(Equal(maintenanceDomain.StatusOpen))
					Expect(*request.EstimatedCost).To(Equal(300.0))
					return nil
				})

			body := `{"property_id":"property-1","description":"No hot water","priority":"urgent","estimated_cost":300}`
			router.ServeHTTP(recorder, authenticated(http.MethodPost, "/v1/maintenance-requests", body))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			var response maintenance_httpapi_internal.MaintenanceResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Description).To(Equal("No hot water"))
		})

		It("should reject a negative cost", func() {
			body := `{"property_id":"property-1","description":"No hot water","actual_cost":-5}`
			router.ServeHTTP(recorder, authenticated(http.MethodPost, "/v1/maintenance-requests", body))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reject an unknown priority", func() {
			body := `{"property_id":"property-1","description":"No hot water","priority":"asap"}`
			router.ServeHTTP(recorder, authenticated(http.MethodPost, "/v1/maintenance-requests", body))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should answer 404 for a property of someone else", func() {
			mockService.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(propertyUsecases.ErrPropertyNotFound)

			body := `{"property_id":"property-9","description":"No hot water"}`
			router.ServeHTTP(recorder, authenticated(http.MethodPost, "/v1/maintenance-requests", body))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("should require a principal", func() {
			request := httptest.NewRequest(http.MethodPost, "/v1/maintenance-requests", strings.NewReader(`{}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Context("listing", func() {
		It("should page the owner's requests", func() {
			mockService.EXPECT().ListRequests(gomock.Any(), ownerID, maintenance_usecases.Pagination{Limit: 5, Offset: 0}).
				Return([]maintenanceDomain.Request{maintenanceRequest()}, 1, nil)

			router.ServeHTTP(recorder, authenticated(http.MethodGet, "/v1/maintenance-requests?limit=5", ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"request-1"`))
		})

		It("should list the requests of one property", func() {
			mockService.EXPECT().ListPropertyRequests(gomock.Any(), ownerID, shareddomain.ID("property-1"), gomock.Any()).
				Return([]maintenanceDomain.Request{maintenanceRequest()}, 1, nil)

			router.ServeHTTP(recorder, authenticated(http.MethodGet, "/v1/properties/property-1/maintenance-requests", ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("completeRequest", func() {
		It("should accept an empty body", func() {
			completed := maintenanceRequest()
			Expect(completed.Complete(nil, completed.CreatedAt.Time)).To(Succeed())
			mockService.EXPECT().CompleteRequest(gomock.Any(), ownerID, shareddomain.ID("request-1"), gomock.Nil()).
				Return(completed, nil)

			router.ServeHTTP(recorder, authenticated(http.MethodPost, "/v1/maintenance-requests/request-1/complete", ""))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(`"completion_date"`))
		})

		It("should pass the actual cost", func() {
			mockService.EXPECT().CompleteRequest(gomock.Any(), ownerID, shareddomain.ID("request-1"), gomock.Any()).
				DoAndReturn(func(_ any, _ shareddomain.ID, _ shareddomain.ID, cost *float64) (maintenanceDomain.Request, error) {
					Expect(*cost).To(Equal(42.5))
					return maintenanceRequest(), nil
				})

			router.ServeHTTP(recorder, authenticated(http.MethodPost, "/v1/maintenance-requests/request-1/complete", `{"actual_cost":42.5}`))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("should answer 409 for closed requests", func() {
			mockService.EXPECT().CompleteRequest(gomock.Any(), ownerID, gomock.Any(), gomock.Any()).
				Return(maintenanceDomain.Request{}, maintenanceDomain.ErrInvalidTransition)

			router.ServeHTTP(recorder, authenticated(http.MethodPost, "/v1/maintenance-requests/request-1/complete", ""))

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("update and delete", func() {
		It("should update with the path id", func() {
			mockService.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, request maintenanceDomain.Request) error {
					Expect(request.ID).To(Equal(shareddomain.ID("request-1")))
					Expect(request.Status).To(Equal(maintenanceDomain.StatusInProgress))
					Expect(request.AssignedTo).To(Equal("Plumbing Co"))
					return nil
				})

			body := `{"property_id":"property-1","description":"Leaking tap","status":"in_progress","assigned_to":"Plumbing Co"}`
			router.ServeHTTP(recorder, authenticated(http.MethodPut, "/v1/maintenance-requests/request-1", body))

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})

		It("should answer 404 for unknown requests", func() {
			mockService.EXPECT().DeleteRequest(gomock.Any(), ownerID, shareddomain.ID("missing")).
				Return(maintenance_usecases.ErrRequestNotFound)

			router.ServeHTTP(recorder, authenticated(http.MethodDelete, "/v1/maintenance-requests/missing", ""))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("should hide storage failures", func() {
			mockService.EXPECT().GetRequest(gomock.Any(), ownerID, shareddomain.ID("request-1")).
				Return(maintenanceDomain.Request{}, errors.New("db down"))

			router.ServeHTTP(recorder, authenticated(http.MethodGet, "/v1/maintenance-requests/request-1", ""))

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(recorder.Body.String()).NotTo(ContainSubstring("db down"))
		})
	})
})
