package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"easyrent-server/internal/shared_kernel/domain"
)

var _ = ginkgo.Describe("HTTPServer", func() {
	var (
		tp *trace.TracerProvider
	)

	ginkgo.BeforeEach(func() {
		tp = trace.NewTracerProvider(
			trace.WithSpanProcessor(tracetest.NewSpanRecorder()),
		)
		otel.SetTracerProvider(tp)
	})

	ginkgo.AfterEach(func() {
		tp.Shutdown(context.Background())
	})

	ginkgo.Context("TracingMiddleware", func() {
		ginkgo.When("using tracing middleware", func() {
			ginkgo.It("should add span to request context", func() {
				testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					span := GetSpanFromContext(r)
					gomega.Expect(span).NotTo(gomega.BeNil())

					spanCtx := span.SpanContext()
					gomega.Expect(spanCtx.HasSpanID()).To(gomega.BeTrue())

					w.WriteHeader(http.StatusOK)
				})

				middleware := createTracingMiddleware()
				wrappedHandler := middleware(testHandler)

				req := httptest.NewRequest("GET", "/test", nil)
				rec := httptest.NewRecorder()

				wrappedHandler.ServeHTTP(rec, req)

				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			})
		})
	})

	ginkgo.Context("GetSpanFromContext", func() {
		ginkgo.When("getting span from context", func() {
			ginkgo.It("should return a span even when no span is in context", func() {
				req := httptest.NewRequest("GET", "/test", nil)
				span := GetSpanFromContext(req)

				gomega.Expect(span).NotTo(gomega.BeNil())
			})
		})
	})

	ginkgo.Context("UserHeaderMiddleware", func() {
		ginkgo.When("using user header middleware with headers", func() {
			ginkgo.It("should process user headers correctly", func() {
				testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					span := GetSpanFromContext(r)
					gomega.Expect(span).NotTo(gomega.BeNil())

					spanCtx := span.SpanContext()
					gomega.Expect(spanCtx.HasSpanID()).To(gomega.BeTrue())

					w.WriteHeader(http.StatusOK)
				})

				tracingMiddleware := createTracingMiddleware()
				userHeaderMiddleware := createUserHeaderMiddleware()
				wrappedHandler := tracingMiddleware(userHeaderMiddleware(testHandler))

				req := httptest.NewRequest("GET", "/test", nil)
				req.Header.Set("X-User-ID", "user123")
				req.Header.Set("X-User-Name", "John Doe")
				req.Header.Set("X-User-Email", "john.doe@example.com")
				rec := httptest.NewRecorder()

				wrappedHandler.ServeHTTP(rec, req)

				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			})
		})

		ginkgo.When("using user header middleware without headers", func() {
			ginkgo.It("should handle requests without user headers", func() {
				testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					span := GetSpanFromContext(r)
					gomega.Expect(span).NotTo(gomega.BeNil())

					w.WriteHeader(http.StatusOK)
				})

				tracingMiddleware := createTracingMiddleware()
				userHeaderMiddleware := createUserHeaderMiddleware()
				wrappedHandler := tracingMiddleware(userHeaderMiddleware(testHandler))

				req := httptest.NewRequest("GET", "/test", nil)
				rec := httptest.NewRecorder()

				wrappedHandler.ServeHTTP(rec, req)

				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			})
		})
	})
	ginkgo.Context("Principal", func() {
		ginkgo.It("should place the principal from headers into the context", func() {
			var got domain.Principal
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				principal, ok := RequirePrincipal(w, r)
				gomega.Expect(ok).To(gomega.BeTrue())
				got = principal
				w.WriteHeader(http.StatusOK)
			})

			wrappedHandler := createTracingMiddleware()(createUserHeaderMiddleware()(testHandler))

			req := httptest.NewRequest("GET", "/v1/properties", nil)
			req.Header.Set("X-User-ID", "5f8a3a8e-3b7e-4b8e-9a51-1f0d7c1d2e3f")
			req.Header.Set("X-User-Email", "owner@example.com")
			req.Header.Set("X-User-Name", "Jane Owner")
			rec := httptest.NewRecorder()

			wrappedHandler.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(got.UserID).To(gomega.Equal(domain.ID("5f8a3a8e-3b7e-4b8e-9a51-1f0d7c1d2e3f")))
			gomega.Expect(got.Email).To(gomega.Equal("owner@example.com"))
			gomega.Expect(got.Name).To(gomega.Equal("Jane Owner"))
		})

		ginkgo.It("should reply 401 without user headers", func() {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, ok := RequirePrincipal(w, r); !ok {
					return
				}
				w.WriteHeader(http.StatusOK)
			})

			wrappedHandler := createUserHeaderMiddleware()(testHandler)
			rec := httptest.NewRecorder()

			wrappedHandler.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/properties", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})

	ginkgo.Context("Healthz", func() {
		ginkgo.It("should report success", func() {
			server := NewServer(ServerConfig{})
			rec := httptest.NewRecorder()

			server.server.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("success"))
		})
	})
})
