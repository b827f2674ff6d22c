package httpapi

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"easyrent-server/internal/infra/httpserver"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
	"easyrent-server/internal/submission"
	"easyrent-server/internal/wizard"
	"easyrent-server/internal/wizard/httpapi/internal"
	"easyrent-server/internal/wizard/usecases"
)

const (
	_multipartMemory = 1 << 20
	_fileFormKey     = "file"
)

func NewWizardController(service usecases.SessionService) *WizardController {
	return &WizardController{
		service: service,
	}
}

var _ httpserver.Controller = &WizardController{}

// WizardController exposes wizard sessions. The principal is optional:
// each flow decides at start whether a session needs one.
type WizardController struct {
	service usecases.SessionService
}

func (c *WizardController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/wizards/{kind}", c.start())
	router.Handle("GET /v1/wizards/{id}", c.get())
	router.Handle("PATCH /v1/wizards/{id}/draft", c.updateDraft())
	router.Handle("POST /v1/wizards/{id}/next", c.next())
	router.Handle("POST /v1/wizards/{id}/back", c.back())
	router.Handle("POST /v1/wizards/{id}/jump", c.jump())
	router.Handle("POST /v1/wizards/{id}/files", c.attachFile())
	router.Handle("DELETE /v1/wizards/{id}/files/{fileID}", c.removeFile())
	router.Handle("POST /v1/wizards/{id}/submit", c.submit())
	router.Handle("DELETE /v1/wizards/{id}", c.cancel())
}

func principalOf(r *http.Request) shareddomain.Principal {
	principal, _ := shareddomain.PrincipalFromContext(r.Context())
	return principal
}

func (c *WizardController) start() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.StartRequest
		if r.ContentLength != 0 {
			if err := httpserver.DecodeJSONBody(r, &body); err != nil {
				httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		params := map[string]string{}
		for key := range r.URL.Query() {
			params[key] = r.URL.Query().Get(key)
		}
		for key, value := range body.Params {
			params[key] = value
		}

		view, err := c.service.Start(r.Context(), wizard.Kind(r.PathValue("kind")), usecases.StartRequest{
			Principal: principalOf(r),
			Params:    params,
			Seed:      body.Seed,
		})
		if err != nil {
			replyWithWizardError(w, view, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToWizardResponse(view))
	}
}

func (c *WizardController) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := c.service.Get(r.Context(), principalOf(r), r.PathValue("id"))
		reply(w, view, err)
	}
}

func (c *WizardController) updateDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var partial map[string]any
		if err := httpserver.DecodeJSONBody(r, &partial); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		view, err := c.service.UpdateDraft(r.Context(), principalOf(r), r.PathValue("id"), partial)
		reply(w, view, err)
	}
}

func (c *WizardController) next() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := c.service.Next(r.Context(), principalOf(r), r.PathValue("id"))
		reply(w, view, err)
	}
}

func (c *WizardController) back() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := c.service.Back(r.Context(), principalOf(r), r.PathValue("id"))
		reply(w, view, err)
	}
}

func (c *WizardController) jump() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.JumpRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		view, err := c.service.Jump(r.Context(), principalOf(r), r.PathValue("id"), body.Step)
		reply(w, view, err)
	}
}

// attachFile takes a multipart upload in the "file" part. The target array
// comes from the field query parameter.
func (c *WizardController) attachFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		field := httpserver.GetQueryParam(r, "field")
		if field == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "field is required")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, submission.MaxFileSize+_multipartMemory)
		if err := r.ParseMultipartForm(_multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				httpserver.ReplyWithError(w, http.StatusRequestEntityTooLarge, submission.ErrFileTooLarge.Error())
				return
			}
			httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid multipart body")
			return
		}

		file, header, err := r.FormFile(_fileFormKey)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "file is required")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, submission.MaxFileSize+1))
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "reading file")
			return
		}

		view, ref, err := c.service.AttachFile(r.Context(), principalOf(r), r.PathValue("id"), usecases.FileUpload{
			Field: field,
			Name:  header.Filename,
			Data:  data,
		})
		if err != nil {
			replyWithWizardError(w, view, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.FileResponse{
			File:   ref,
			Wizard: internal.ToWizardResponse(view),
		})
	}
}

func (c *WizardController) removeFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		field := httpserver.GetQueryParam(r, "field")
		if field == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "field is required")
			return
		}

		view, err := c.service.RemoveFile(r.Context(), principalOf(r), r.PathValue("id"), field, r.PathValue("fileID"))
		reply(w, view, err)
	}
}

func (c *WizardController) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := c.service.Submit(r.Context(), principalOf(r), r.PathValue("id"))
		reply(w, view, err)
	}
}

func (c *WizardController) cancel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := c.service.Cancel(r.Context(), principalOf(r), r.PathValue("id"))
		if err != nil {
			replyWithWizardError(w, usecases.View{}, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func reply(w http.ResponseWriter, view usecases.View, err error) {
	if err != nil {
		replyWithWizardError(w, view, err)
		return
	}
	httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToWizardResponse(view))
}

// replyWithWizardError attaches the wizard state whenever the session was
// loaded, so clients can render field errors and the failure slot.
func replyWithWizardError(w http.ResponseWriter, view usecases.View, err error) {
	var details any
	if view.ID != "" {
		details = internal.ToWizardResponse(view)
	}

	var validation *wizard.ValidationError
	var phased wizard.PhasedError
	switch {
	case errors.As(err, &validation):
		httpserver.ReplyWithErrorDetails(w, http.StatusUnprocessableEntity, err.Error(), details)
	case errors.Is(err, shareddomain.ErrUnauthenticated):
		httpserver.ReplyWithError(w, http.StatusUnauthorized, "missing user identity")
	case errors.Is(err, usecases.ErrStartRejected):
		httpserver.ReplyWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, usecases.ErrSessionNotFound),
		errors.Is(err, wizard.ErrUnknownKind),
		errors.Is(err, usecases.ErrFileNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, wizard.ErrSubmissionInProgress),
		errors.Is(err, wizard.ErrAlreadySubmitted),
		errors.Is(err, wizard.ErrNotFinalStep):
		httpserver.ReplyWithErrorDetails(w, http.StatusConflict, err.Error(), details)
	case errors.As(err, &phased):
		replyWithSubmissionError(w, phased, err, details)
	case errors.Is(err, wizard.ErrStepOutOfRange),
		errors.Is(err, usecases.ErrUnknownFileField),
		errors.Is(err, usecases.ErrForeignFile),
		errors.Is(err, submission.ErrEmptyFile):
		httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, submission.ErrUnsupportedType):
		httpserver.ReplyWithError(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, submission.ErrFileTooLarge):
		httpserver.ReplyWithError(w, http.StatusRequestEntityTooLarge, err.Error())
	default:
		slog.Error("handling wizard request", slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, "wizard request failed")
	}
}

// replyWithSubmissionError keeps the wizard details on every failed
// submission, including uploads refused for their content.
func replyWithSubmissionError(w http.ResponseWriter, phased wizard.PhasedError, err error, details any) {
	switch {
	case phased.SubmissionPhase() == wizard.PhasePrecheck:
		httpserver.ReplyWithErrorDetails(w, http.StatusUnprocessableEntity, err.Error(), details)
	case errors.Is(err, submission.ErrUnsupportedType):
		httpserver.ReplyWithErrorDetails(w, http.StatusUnsupportedMediaType, err.Error(), details)
	case errors.Is(err, submission.ErrFileTooLarge):
		httpserver.ReplyWithErrorDetails(w, http.StatusRequestEntityTooLarge, err.Error(), details)
	case errors.Is(err, submission.ErrEmptyFile):
		httpserver.ReplyWithErrorDetails(w, http.StatusBadRequest, err.Error(), details)
	default:
		httpserver.ReplyWithErrorDetails(w, http.StatusBadGateway, "submission failed", details)
	}
}
