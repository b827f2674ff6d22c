package httpserver

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
)

var _ = ginkgo.Describe("Metrics", func() {
	ginkgo.Context("MetricsMiddleware", func() {
		ginkgo.It("should collect metrics correctly", func() {
			reader := metric.NewManualReader()
			provider := metric.NewMeterProvider(metric.WithReader(reader))
			otel.SetMeterProvider(provider)

			ResetMetricsForTesting()

			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(10 * time.Millisecond)
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte("test response"))
			})

			handler := MetricsMiddleware()(testHandler)

			req := httptest.NewRequest("POST", "/v1/wizards/property", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))
			gomega.Expect(w.Body.String()).To(gomega.Equal("test response"))
			gomega.Expect(IsMetricsInitialized()).To(gomega.BeTrue())
		})
	})

	ginkgo.DescribeTable("normalizeEndpoint",
		func(path, expected string) {
			gomega.Expect(normalizeEndpoint(path)).To(gomega.Equal(expected))
		},
		ginkgo.Entry("root path", "/", "root"),
		ginkgo.Entry("empty path", "", "root"),
		ginkgo.Entry("single segment", "/healthz", "/healthz"),
		ginkgo.Entry("nested endpoint", "/v1/properties/available", "/v1/properties/available"),
		ginkgo.Entry("property id", "/v1/properties/123e4567-e89b-12d3-a456-426614174000", "/v1/properties/_id"),
		ginkgo.Entry("wizard action", "/v1/wizards/123e4567-e89b-12d3-a456-426614174000/next", "/v1/wizards/_id/next"),
		ginkgo.Entry("several ids",
			"/v1/properties/123e4567-e89b-12d3-a456-426614174000/maintenance/987fcdeb-51a2-43d7-8f9e-123456789abc",
			"/v1/properties/_id/maintenance/_id"),
	)

	ginkgo.Context("ResponseWriter", func() {
		var (
			recorder      *httptest.ResponseRecorder
			wrappedWriter *responseWriter
		)

		ginkgo.BeforeEach(func() {
			recorder = httptest.NewRecorder()
			wrappedWriter = &responseWriter{ResponseWriter: recorder, statusCode: http.StatusOK}
		})

		ginkgo.It("should handle WriteHeader correctly", func() {
			wrappedWriter.WriteHeader(http.StatusNotFound)
			gomega.Expect(wrappedWriter.statusCode).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusNotFound))
		})

		ginkgo.It("should handle Write correctly", func() {
			_, err := wrappedWriter.Write([]byte("test"))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(recorder.Body.String()).To(gomega.Equal("test"))
		})

		ginkgo.It("should expose the underlying writer", func() {
			gomega.Expect(wrappedWriter.Unwrap()).To(gomega.BeIdenticalTo(recorder))
		})
	})
})
