package httpapi_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	"easyrent-server/internal/infra/httpserver"
	shareddomain "easyrent-server/internal/shared_kernel/domain"
	"easyrent-server/internal/submission"
	"easyrent-server/internal/wizard"
	wizard_httpapi "easyrent-server/internal/wizard/httpapi"
	wizard_httpapi_internal "easyrent-server/internal/wizard/httpapi/internal"
	wizard_usecases "easyrent-server/internal/wizard/usecases"
	mockusecases "easyrent-server/test/unit/doubles/wizard/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("WizardController", func() {
	var (
		mockService *mockusecases.MockSessionService
		ctrl        *gomock.Controller
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
		owner       shareddomain.Principal
		view        wizard_usecases.View
	)

	authenticated := func(request *http.Request) *http.Request {
		return request.WithContext(shareddomain.ContextWithPrincipal(request.Context(), owner))
	}

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockSessionService(ctrl)
		router = http.NewServeMux()
		wizard_httpapi.NewWizardController(mockService).AddRoutes(router)
		recorder = httptest.NewRecorder()
		owner = shareddomain.Principal{UserID: "owner-1"}
		view = wizard_usecases.View{
			ID:     "w-1",
			Kind:   "property",
			Step:   1,
			StepID: "general",
			Steps:  []string{"type", "general", "specific", "review"},
			Draft:  map[string]any{"type": "garage"},
			Status: wizard.StatusEditing,
		}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("start", func() {
		It("should pass the principal, params and seed to the service", func() {
			mockService.EXPECT().
				Start(gomock.Any(), wizard.Kind("onboarding"), gomock.Any()).
				DoAndReturn(func(_ any, _ wizard.Kind, request wizard_usecases.StartRequest) (wizard_usecases.View, error) {
					Expect(request.Principal).To(Equal(owner))
					Expect(request.Params).To(HaveKeyWithValue("email", "tenant@example.com"))
					Expect(request.Params).To(HaveKeyWithValue("token", "abc"))
					Expect(request.Seed).To(HaveKeyWithValue("phone", "+33612345678"))
					return view, nil
				})

			body := `{"params":{"token":"abc"},"seed":{"phone":"+33612345678"}}`
			request := httptest.NewRequest("POST", "/v1/wizards/onboarding?email=tenant@example.com", strings.NewReader(body))
			router.ServeHTTP(recorder, authenticated(request))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			var response wizard_httpapi_internal.WizardResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.ID).To(Equal("w-1"))
			Expect(response.Steps).To(HaveLen(4))
			Expect(response.Errors).To(BeEmpty())
		})

		It("should reply 404 for unknown kinds", func() {
			mockService.EXPECT().Start(gomock.Any(), wizard.Kind("castle"), gomock.Any()).Return(wizard_usecases.View{}, wizard.ErrUnknownKind)

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/v1/wizards/castle", nil))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("should reply 401 when the flow needs a user", func() {
			mockService.EXPECT().Start(gomock.Any(), wizard.Kind("property"), gomock.Any()).Return(wizard_usecases.View{}, shareddomain.ErrUnauthenticated)

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/v1/wizards/property", nil))

			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should reply 403 when the flow rejects the start", func() {
			err := fmt.Errorf("%w: invite expired", wizard_usecases.ErrStartRejected)
			mockService.EXPECT().Start(gomock.Any(), wizard.Kind("onboarding"), gomock.Any()).Return(wizard_usecases.View{}, err)

			router.ServeHTTP(recorder, httptest.NewRequest("POST", "/v1/wizards/onboarding?token=old", nil))

			Expect(recorder.Code).To(Equal(http.StatusForbidden))
		})
	})

	Context("navigation", func() {
		It("should return the wizard after updating the draft", func() {
			mockService.EXPECT().
				UpdateDraft(gomock.Any(), owner, "w-1", map[string]any{"title": "Box Bastille"}).
				Return(view, nil)

			request := httptest.NewRequest("PATCH", "/v1/wizards/w-1/draft", strings.NewReader(`{"title":"Box Bastille"}`))
			router.ServeHTTP(recorder, authenticated(request))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("should reply 400 for file handles the session did not issue", func() {
			mockService.EXPECT().
				UpdateDraft(gomock.Any(), owner, "w-1", gomock.Any()).
				Return(view, fmt.Errorf("%w: doc-1", wizard_usecases.ErrForeignFile))

			body := `{"photos":[{"file_id":"doc-1","content_type":"image/png","size":4}]}`
			router.ServeHTTP(recorder, authenticated(httptest.NewRequest("PATCH", "/v1/wizards/w-1/draft", strings.NewReader(body))))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reply 422 with the field errors when a step does not validate", func() {
			view.Errors = map[string]map[string]string{"general": {"title": "is required"}}
			err := &wizard.ValidationError{Section: "general", Issues: wizard.Issues{{Path: "title", Code: wizard.CodeRequired, Message: "is required"}}}
			mockService.EXPECT().Next(gomock.Any(), owner, "w-1").Return(view, err)

			router.ServeHTTP(recorder, authenticated(httptest.NewRequest("POST", "/v1/wizards/w-1/next", nil)))

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
			var response struct {
				Message string                                 `json:"message"`
				Details wizard_httpapi_internal.WizardResponse `json:"details"`
			}
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Details.StepID).To(Equal("general"))
			Expect(response.Details.Errors["general"]).To(HaveKeyWithValue("title", "is required"))
		})

		It("should go back", func() {
			mockService.EXPECT().Back(gomock.Any(), owner, "w-1").Return(view, nil)

			router.ServeHTTP(recorder, authenticated(httptest.NewRequest("POST", "/v1/wizards/w-1/back", nil)))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("should jump to the requested step", func() {
			mockService.EXPECT().Jump(gomock.Any(), owner, "w-1", 3).Return(view, nil)

			request := httptest.NewRequest("POST", "/v1/wizards/w-1/jump", strings.NewReader(`{"step":3}`))
			router.ServeHTTP(recorder, authenticated(request))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("should reply 400 for steps out of range", func() {
			mockService.EXPECT().Jump(gomock.Any(), owner, "w-1", 9).Return(view, wizard.ErrStepOutOfRange)

			request := httptest.NewRequest("POST", "/v1/wizards/w-1/jump", strings.NewReader(`{"step":9}`))
			router.ServeHTTP(recorder, authenticated(request))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should reply 404 for sessions of someone else", func() {
			mockService.EXPECT().Get(gomock.Any(), owner, "w-2").Return(wizard_usecases.View{}, wizard_usecases.ErrSessionNotFound)

			router.ServeHTTP(recorder, authenticated(httptest.NewRequest("GET", "/v1/wizards/w-2", nil)))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("files", func() {
		multipartRequest := func(target, name string, content []byte) *http.Request {
			body := &bytes.Buffer{}
			writer := multipart.NewWriter(body)
			part, err := writer.CreateFormFile("file", name)
			Expect(err).NotTo(HaveOccurred())
			_, err = part.Write(content)
			Expect(err).NotTo(HaveOccurred())
			Expect(writer.Close()).To(Succeed())

			request := httptest.NewRequest("POST", target, body)
			request.Header.Set("Content-Type", writer.FormDataContentType())
			return authenticated(request)
		}

		It("should stage the uploaded file", func() {
			ref := wizard.FileRef{ID: "f-1", Name: "front.jpg", ContentType: "image/jpeg", Size: 4}
			mockService.EXPECT().
				AttachFile(gomock.Any(), owner, "w-1", wizard_usecases.FileUpload{Field: "photos", Name: "front.jpg", Data: []byte("\xff\xd8\xff\xe0")}).
				Return(view, ref, nil)

			router.ServeHTTP(recorder, multipartRequest("/v1/wizards/w-1/files?field=photos", "front.jpg", []byte("\xff\xd8\xff\xe0")))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			var response wizard_httpapi_internal.FileResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.File.ID).To(Equal("f-1"))
			Expect(response.Wizard.ID).To(Equal("w-1"))
		})

		It("should reply 415 for types outside the allow list", func() {
			err := fmt.Errorf("%w: text/plain", submission.ErrUnsupportedType)
			mockService.EXPECT().AttachFile(gomock.Any(), owner, "w-1", gomock.Any()).Return(view, wizard.FileRef{}, err)

			router.ServeHTTP(recorder, multipartRequest("/v1/wizards/w-1/files?field=photos", "notes.txt", []byte("hello")))

			Expect(recorder.Code).To(Equal(http.StatusUnsupportedMediaType))
		})

		It("should reply 413 for files over the limit", func() {
			mockService.EXPECT().AttachFile(gomock.Any(), owner, "w-1", gomock.Any()).Return(view, wizard.FileRef{}, submission.ErrFileTooLarge)

			router.ServeHTTP(recorder, multipartRequest("/v1/wizards/w-1/files?field=photos", "huge.jpg", []byte("\xff\xd8\xff\xe0")))

			Expect(recorder.Code).To(Equal(http.StatusRequestEntityTooLarge))
		})

		It("should require the target field", func() {
			router.ServeHTTP(recorder, multipartRequest("/v1/wizards/w-1/files", "front.jpg", []byte("\xff\xd8\xff\xe0")))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should remove a staged file", func() {
			mockService.EXPECT().RemoveFile(gomock.Any(), owner, "w-1", "photos", "f-1").Return(view, nil)

			router.ServeHTTP(recorder, authenticated(httptest.NewRequest("DELETE", "/v1/wizards/w-1/files/f-1?field=photos", nil)))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("submit", func() {
		It("should return the result of a successful submission", func() {
			view.Status = wizard.StatusSubmitted
			view.Result = &wizard.Result{PrimaryID: "p-1", Created: map[string][]string{"properties": {"p-1"}}}
			mockService.EXPECT().Submit(gomock.Any(), owner, "w-1").Return(view, nil)

			router.ServeHTTP(recorder, authenticated(httptest.NewRequest("POST", "/v1/wizards/w-1/submit", nil)))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			var response wizard_httpapi_internal.WizardResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Status).To(Equal("submitted"))
			Expect(response.Result.PrimaryID).To(Equal("p-1"))
		})

		It("should reply 502 with the failure slot when a phase fails", func() {
			view.Failure = &wizard.Failure{Phase: "upload", Op: "photos.0", Message: "upload photos.0: storage down"}
			err := &submission.Error{Phase: submission.PhaseUpload, Op: "photos.0", Err: errors.New("storage down")}
			mockService.EXPECT().Submit(gomock.Any(), owner, "w-1").Return(view, err)

			router.ServeHTTP(recorder, authenticated(httptest.NewRequest("POST", "/v1/wizards/w-1/submit", nil)))

			Expect(recorder.Code).To(Equal(http.StatusBadGateway))
			var response httpserver.ErrorResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Details).To(HaveKey("failure"))
		})

		DescribeTable("should keep the failure slot when an upload is refused for its content",
			func(cause error, status int) {
				view.Failure = &wizard.Failure{Phase: "upload", Op: "photos.0", Message: "upload photos.0: " + cause.Error()}
				err := &submission.Error{Phase: submission.PhaseUpload, Op: "photos.0", Err: fmt.Errorf("%w: application/pdf", cause)}
				mockService.EXPECT().Submit(gomock.Any(), owner, "w-1").Return(view, err)

				router.ServeHTTP(recorder, authenticated(httptest.NewRequest("POST", "/v1/wizards/w-1/submit", nil)))

				Expect(recorder.Code).To(Equal(status))
				var response httpserver.ErrorResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response.Details).To(HaveKeyWithValue("failure", HaveKeyWithValue("op", "photos.0")))
			},
			Entry("unsupported type", submission.ErrUnsupportedType, http.StatusUnsupportedMediaType),
			Entry("too large", submission.ErrFileTooLarge, http.StatusRequestEntityTooLarge),
			Entry("empty", submission.ErrEmptyFile, http.StatusBadRequest),
		)

		It("should reply 409 while a submission is running", func() {
			mockService.EXPECT().Submit(gomock.Any(), owner, "w-1").Return(view, wizard.ErrSubmissionInProgress)

			router.ServeHTTP(recorder, authenticated(httptest.NewRequest("POST", "/v1/wizards/w-1/submit", nil)))

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("cancel", func() {
		It("should reply 204", func() {
			mockService.EXPECT().Cancel(gomock.Any(), owner, "w-1").Return(nil)

			router.ServeHTTP(recorder, authenticated(httptest.NewRequest("DELETE", "/v1/wizards/w-1", nil)))

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})
})
