package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"easyrent-server/internal/infra/httpserver"
	leaseDomain "easyrent-server/internal/lease/domain"
	"easyrent-server/internal/lease/httpapi/internal"
	"easyrent-server/internal/lease/usecases"
	propertyUsecases "easyrent-server/internal/property/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

const (
	listLeasesErrMessage     = "failed to list leases"
	createLeaseErrMessage    = "failed to create lease"
	updateLeaseErrMessage    = "failed to update lease"
	terminateLeaseErrMessage = "failed to terminate lease"
	deleteLeaseErrMessage    = "failed to delete lease"
	getLeaseErrMessage       = "failed to get lease"
	leaseNotFoundMessage     = "lease not found"
	invalidBodyMessage       = "invalid request body"
)

var validationErrors = []error{
	leaseDomain.ErrTenantRequired,
	leaseDomain.ErrPropertyRequired,
	leaseDomain.ErrInvalidAmount,
	leaseDomain.ErrInvalidPaymentDueDay,
	leaseDomain.ErrInvalidStatus,
	leaseDomain.ErrTermDatesRequired,
	leaseDomain.ErrEndNotAfterStart,
	leaseDomain.ErrTermTooShort,
}

func NewLeaseController(service usecases.LeaseService) *LeaseController {
	return &LeaseController{
		service: service,
	}
}

var _ httpserver.Controller = &LeaseController{}

type LeaseController struct {
	service usecases.LeaseService
}

func (c *LeaseController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/leases", c.listLeases())
	router.Handle("POST /v1/leases", c.createLease())
	router.Handle("GET /v1/leases/{id}", c.getLease())
	router.Handle("PUT /v1/leases/{id}", c.updateLease())
	router.Handle("POST /v1/leases/{id}/terminate", c.terminateLease())
	router.Handle("DELETE /v1/leases/{id}", c.deleteLease())
}

func (c *LeaseController) listLeases() http.HandlerFunc {
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

		leases, total, err := c.service.ListLeases(r.Context(), principal.UserID, pagination)
		if err != nil {
			slog.Error("listing leases", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, listLeasesErrMessage)
			return
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, internal.ToLeaseResponses(leases), total, paginationParams)
	}
}

func (c *LeaseController) createLease() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		var body internal.LeaseRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyMessage)
			return
		}

		lease, err := buildLease(principal.UserID, "", body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := c.service.CreateLease(r.Context(), lease); err != nil {
			replyWithLeaseError(w, err, createLeaseErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToLeaseResponse(lease))
	}
}

func (c *LeaseController) getLease() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		lease, err := c.service.GetLease(r.Context(), principal.UserID, shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyWithLeaseError(w, err, getLeaseErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToLeaseResponse(lease))
	}
}

func (c *LeaseController) updateLease() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		var body internal.LeaseRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyMessage)
			return
		}

		lease, err := buildLease(principal.UserID, shareddomain.ID(r.PathValue("id")), body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := c.service.UpdateLease(r.Context(), lease); err != nil {
			replyWithLeaseError(w, err, updateLeaseErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *LeaseController) terminateLease() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		lease, err := c.service.TerminateLease(r.Context(), principal.UserID, shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyWithLeaseError(w, err, terminateLeaseErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToLeaseResponse(lease))
	}
}

func (c *LeaseController) deleteLease() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		err := c.service.DeleteLease(r.Context(), principal.UserID, shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyWithLeaseError(w, err, deleteLeaseErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func buildLease(ownerID, id shareddomain.ID, body internal.LeaseRequest) (leaseDomain.Lease, error) {
	builder := leaseDomain.NewLeaseBuilder().
		WithOwnerID(ownerID).
		WithTenantID(shareddomain.ID(body.TenantID)).
		WithPropertyID(shareddomain.ID(body.PropertyID)).
		WithTerm(leaseDomain.LeaseTerm{Start: body.StartDate, End: body.EndDate}).
		WithRentAmount(body.RentAmount).
		WithDepositAmount(body.DepositAmount)

	if id != "" {
		builder = builder.WithID(id)
	}
	if body.PaymentDueDay != 0 {
		builder = builder.WithPaymentDueDay(body.PaymentDueDay)
	}
	if body.Status != "" {
		builder = builder.WithStatus(body.Status)
	}

	return builder.Build()
}

func replyWithLeaseError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, usecases.ErrLeaseNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, leaseNotFoundMessage)
	case errors.Is(err, propertyUsecases.ErrPropertyNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecases.ErrPropertyLeased),
		errors.Is(err, leaseDomain.ErrInvalidTransition):
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
