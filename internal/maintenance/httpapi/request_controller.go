package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"easyrent-server/internal/infra/httpserver"
	maintenanceDomain "easyrent-server/internal/maintenance/domain"
	"easyrent-server/internal/maintenance/httpapi/internal"
	"easyrent-server/internal/maintenance/usecases"
	propertyUsecases "easyrent-server/internal/property/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

const (
	listRequestsErrMessage    = "failed to list maintenance requests"
	createRequestErrMessage   = "failed to create maintenance request"
	getRequestErrMessage      = "failed to get maintenance request"
	updateRequestErrMessage   = "failed to update maintenance request"
	completeRequestErrMessage = "failed to complete maintenance request"
	deleteRequestErrMessage   = "failed to delete maintenance request"
	requestNotFoundMessage    = "maintenance request not found"
	invalidBodyMessage        = "invalid request body"
)

var validationErrors = []error{
	maintenanceDomain.ErrPropertyRequired,
	maintenanceDomain.ErrDescriptionRequired,
	maintenanceDomain.ErrDescriptionTooLong,
	maintenanceDomain.ErrInvalidPriority,
	maintenanceDomain.ErrInvalidStatus,
	maintenanceDomain.ErrInvalidCost,
}

func NewRequestController(service usecases.RequestService) *RequestController {
	return &RequestController{
		service: service,
	}
}

var _ httpserver.Controller = &RequestController{}

type RequestController struct {
	service usecases.RequestService
}

func (c *RequestController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/maintenance-requests", c.listRequests())
	router.Handle("POST /v1/maintenance-requests", c.createRequest())
	router.Handle("GET /v1/maintenance-requests/{id}", c.getRequest())
	router.Handle("PUT /v1/maintenance-requests/{id}", c.updateRequest())
	router.Handle("POST /v1/maintenance-requests/{id}/complete", c.completeRequest())
	router.Handle("DELETE /v1/maintenance-requests/{id}", c.deleteRequest())
	router.Handle("GET /v1/properties/{id}/maintenance-requests", c.listPropertyRequests())
}

func (c *RequestController) listRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: paginationParams.Offset(),
		}

		requests, total, err := c.service.ListRequests(r.Context(), principal.UserID, pagination)
		if err != nil {
			slog.Error("listing maintenance requests", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, listRequestsErrMessage)
			return
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, internal.ToMaintenanceResponses(requests), total, paginationParams)
	}
}

func (c *RequestController) listPropertyRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: paginationParams.Offset(),
		}

		requests, total, err := c.service.ListPropertyRequests(r.Context(), principal.UserID, shareddomain.ID(r.PathValue("id")), pagination)
		if err != nil {
			replyWithRequestError(w, err, listRequestsErrMessage)
			return
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, internal.ToMaintenanceResponses(requests), total, paginationParams)
	}
}

func (c *RequestController) createRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		var body internal.MaintenanceRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyMessage)
			return
		}

		request, err := buildRequest(principal.UserID, "", body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := c.service.CreateRequest(r.Context(), request); err != nil {
			replyWithRequestError(w, err, createRequestErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToMaintenanceResponse(request))
	}
}

func (c *RequestController) getRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		request, err := c.service.GetRequest(r.Context(), principal.UserID, shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyWithRequestError(w, err, getRequestErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToMaintenanceResponse(request))
	}
}

func (c *RequestController) updateRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		var body internal.MaintenanceRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyMessage)
			return
		}

		request, err := buildRequest(principal.UserID, shareddomain.ID(r.PathValue("id")), body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := c.service.UpdateRequest(r.Context(), request); err != nil {
			replyWithRequestError(w, err, updateRequestErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *RequestController) completeRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		// the body is optional
		var body internal.CompleteRequest
		if r.ContentLength != 0 {
			if err := httpserver.DecodeJSONBody(r, &body); err != nil {
				httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyMessage)
				return
			}
		}

		request, err := c.service.CompleteRequest(r.Context(), principal.UserID, shareddomain.ID(r.PathValue("id")), body.ActualCost)
		if err != nil {
			replyWithRequestError(w, err, completeRequestErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToMaintenanceResponse(request))
	}
}

func (c *RequestController) deleteRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		err := c.service.DeleteRequest(r.Context(), principal.UserID, shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyWithRequestError(w, err, deleteRequestErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func buildRequest(ownerID, id shareddomain.ID, body internal.MaintenanceRequest) (maintenanceDomain.Request, error) {
	builder := maintenanceDomain.NewRequestBuilder().
		WithOwnerID(ownerID).
		WithPropertyID(shareddomain.ID(body.PropertyID)).
		WithDescription(body.Description).
		WithAssignedTo(body.AssignedTo).
		WithEstimatedCost(body.EstimatedCost).
		WithActualCost(body.ActualCost)

	if id != "" {
		builder = builder.WithID(id)
	}
	if body.Priority != "" {
		builder = builder.WithPriority(body.Priority)
	}
	if body.Status != "" {
		builder = builder.WithStatus(body.Status)
	}

	return builder.Build()
}

func replyWithRequestError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, usecases.ErrRequestNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, requestNotFoundMessage)
	case errors.Is(err, propertyUsecases.ErrPropertyNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, maintenanceDomain.ErrInvalidTransition):
		httpserver.ReplyWithError(w, http.StatusConflict, err.Error())
	case isValidationError(err):
		httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error(message, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, message)
	}
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
