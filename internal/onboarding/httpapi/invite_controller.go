package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"easyrent-server/internal/infra/httpserver"
	leaseDomain "easyrent-server/internal/lease/domain"
	leaseUsecases "easyrent-server/internal/lease/usecases"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
	"easyrent-server/internal/onboarding/httpapi/internal"
	"easyrent-server/internal/onboarding/usecases"
	propertyUsecases "easyrent-server/internal/property/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

const (
	listInvitesErrMessage  = "failed to list invites"
	createInviteErrMessage = "failed to create invite"
	getInviteErrMessage    = "failed to get invite"
	verifyInviteErrMessage = "failed to verify invite"
	acceptInviteErrMessage = "failed to accept invite"
	listTenantsErrMessage  = "failed to list tenants"
	inviteNotFoundMessage  = "invalid or expired invitation link"
	inviteExpiredMessage   = "invitation has expired"
	invalidBodyMessage     = "invalid request body"
	validationMessage      = "validation failed"
)

func NewInviteController(
	invites usecases.InviteService,
	accepts usecases.AcceptService,
	tenants usecases.TenantService,
) *InviteController {
	return &InviteController{
		invites: invites,
		accepts: accepts,
		tenants: tenants,
	}
}

var _ httpserver.Controller = &InviteController{}

// InviteController serves the landlord side of onboarding and the two
// public endpoints reached from the emailed link.
type InviteController struct {
	invites usecases.InviteService
	accepts usecases.AcceptService
	tenants usecases.TenantService
}

func (c *InviteController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/invites", c.listInvites())
	router.Handle("POST /v1/invites", c.createInvite())
	router.Handle("GET /v1/invites/{id}", c.getInvite())
	router.Handle("POST /v1/invites/verify", c.verifyInvite())
	router.Handle("POST /v1/invites/accept", c.acceptInvite())
	router.Handle("GET /v1/tenants", c.listTenants())
}

func (c *InviteController) listInvites() http.HandlerFunc {
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

		invites, total, err := c.invites.ListInvites(r.Context(), principal.UserID, pagination)
		if err != nil {
			slog.Error("listing invites", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, listInvitesErrMessage)
			return
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, internal.ToInviteResponses(invites), total, paginationParams)
	}
}

func (c *InviteController) createInvite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		var body internal.InviteRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyMessage)
			return
		}

		invite, err := onboardingDomain.NewInviteBuilder().
			WithLandlord(principal).
			WithPropertyID(shareddomain.ID(body.PropertyID)).
			WithTenant(body.FirstName, body.LastName, body.Email, body.Phone).
			WithTerm(leaseDomain.LeaseTerm{Start: body.LeaseStartDate, End: body.LeaseEndDate}).
			WithRentAmount(body.RentAmount).
			WithDepositAmount(body.Deposit).
			Build()
		if err != nil {
			replyWithInviteError(w, err, createInviteErrMessage)
			return
		}

		created, err := c.invites.CreateInvite(r.Context(), invite)
		if err != nil {
			replyWithInviteError(w, err, createInviteErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToInviteResponse(created))
	}
}

func (c *InviteController) getInvite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		invite, err := c.invites.GetInvite(r.Context(), principal.UserID, shareddomain.ID(r.PathValue("id")))
		if err != nil {
			replyWithInviteError(w, err, getInviteErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToInviteResponse(invite))
	}
}

func (c *InviteController) verifyInvite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.VerifyRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyMessage)
			return
		}

		invite, err := c.invites.VerifyInvite(r.Context(), body.Email, body.Token)
		if err != nil {
			replyWithInviteError(w, err, verifyInviteErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToVerifiedInviteResponse(invite))
	}
}

func (c *InviteController) acceptInvite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.AcceptRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyMessage)
			return
		}

		acceptance, err := c.accepts.AcceptInvite(r.Context(), usecases.AcceptRequest{
			Email:     body.Email,
			Token:     body.Token,
			FirstName: body.FirstName,
			LastName:  body.LastName,
			Phone:     body.Phone,
		})
		if err != nil {
			replyWithInviteError(w, err, acceptInviteErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.AcceptResponse{
			InviteID: acceptance.InviteID.String(),
			TenantID: acceptance.TenantID.String(),
			LeaseID:  acceptance.LeaseID.String(),
		})
	}
}

func (c *InviteController) listTenants() http.HandlerFunc {
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

		tenants, total, err := c.tenants.ListTenants(r.Context(), principal.UserID, pagination)
		if err != nil {
			slog.Error("listing tenants", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, listTenantsErrMessage)
			return
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, internal.ToTenantResponses(tenants), total, paginationParams)
	}
}

func replyWithInviteError(w http.ResponseWriter, err error, message string) {
	var fieldErr *onboardingDomain.FieldError

	switch {
	case errors.As(err, &fieldErr):
		httpserver.ReplyWithErrorDetails(w, http.StatusUnprocessableEntity, validationMessage,
			map[string]string{fieldErr.Field: fieldErr.Err.Error()})
	case errors.Is(err, onboardingDomain.ErrLandlordRequired):
		httpserver.ReplyWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, usecases.ErrInviteNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, inviteNotFoundMessage)
	case errors.Is(err, usecases.ErrInviteExpired):
		httpserver.ReplyWithError(w, http.StatusGone, inviteExpiredMessage)
	case errors.Is(err, propertyUsecases.ErrPropertyNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, propertyUsecases.ErrPropertyUnavailable),
		errors.Is(err, leaseUsecases.ErrPropertyLeased),
		errors.Is(err, onboardingDomain.ErrInviteNotPending):
		httpserver.ReplyWithError(w, http.StatusConflict, err.Error())
	default:
		slog.Error(message, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, message)
	}
}
