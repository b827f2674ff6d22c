package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"easyrent-server/internal/infra/httpserver"
	"easyrent-server/internal/property/httpapi/internal"
	"easyrent-server/internal/property/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
)

const (
	listPropertiesErrMessage = "failed to list properties"
	getPropertyErrMessage    = "failed to get property"
	deletePropertyErrMessage = "failed to delete property"
	propertyNotFoundMessage  = "property not found"
)

func NewPropertyController(service usecases.PropertyService) *PropertyController {
	return &PropertyController{
		service: service,
	}
}

var _ httpserver.Controller = &PropertyController{}

type PropertyController struct {
	service usecases.PropertyService
}

func (c *PropertyController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/properties", c.listProperties())
	router.Handle("GET /v1/properties/available", c.listAvailableProperties())
	router.Handle("GET /v1/properties/{id}", c.getProperty())
	router.Handle("DELETE /v1/properties/{id}", c.deleteProperty())
}

func (c *PropertyController) listProperties() http.HandlerFunc {
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

		properties, total, err := c.service.ListProperties(r.Context(), principal.UserID, pagination)
		if err != nil {
			slog.Error("listing properties", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, listPropertiesErrMessage)
			return
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, internal.ToPropertyResponses(properties), total, paginationParams)
	}
}

// listAvailableProperties feeds the property picker of the invite form.
func (c *PropertyController) listAvailableProperties() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		properties, err := c.service.ListAvailableProperties(r.Context(), principal.UserID)
		if err != nil {
			slog.Error("listing available properties", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, listPropertiesErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.PropertyListResponse{
			Data: internal.ToPropertyResponses(properties),
		})
	}
}

func (c *PropertyController) getProperty() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		property, err := c.service.GetProperty(r.Context(), principal.UserID, shareddomain.ID(r.PathValue("id")))
		if errors.Is(err, usecases.ErrPropertyNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, propertyNotFoundMessage)
			return
		}
		if err != nil {
			slog.Error("getting property", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getPropertyErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToPropertyResponse(property))
	}
}

func (c *PropertyController) deleteProperty() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := httpserver.RequirePrincipal(w, r)
		if !ok {
			return
		}

		err := c.service.DeleteProperty(r.Context(), principal.UserID, shareddomain.ID(r.PathValue("id")))
		if errors.Is(err, usecases.ErrPropertyNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, propertyNotFoundMessage)
			return
		}
		if err != nil {
			slog.Error("deleting property", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, deletePropertyErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
