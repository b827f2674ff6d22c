package domain_test

import (
	"context"

	"easyrent-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Principal", func() {
	ginkgo.It("should round-trip through the context", func() {
		principal := domain.Principal{UserID: domain.NewID(), Email: "owner@example.com"}
		ctx := domain.ContextWithPrincipal(context.Background(), principal)

		got, err := domain.PrincipalFromContext(ctx)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(got).To(gomega.Equal(principal))
	})

	ginkgo.It("should fail without principal", func() {
		_, err := domain.PrincipalFromContext(context.Background())
		gomega.Expect(err).To(gomega.MatchError(domain.ErrUnauthenticated))
	})

	ginkgo.It("should reject an empty user id", func() {
		ctx := domain.ContextWithPrincipal(context.Background(), domain.Principal{Email: "x@example.com"})
		_, err := domain.PrincipalFromContext(ctx)
		gomega.Expect(err).To(gomega.MatchError(domain.ErrUnauthenticated))
	})
})

var _ = ginkgo.Describe("ID", func() {
	ginkgo.It("should generate valid uuids", func() {
		gomega.Expect(domain.NewID().IsValid()).To(gomega.BeTrue())
		gomega.Expect(domain.ID("not-a-uuid").IsValid()).To(gomega.BeFalse())
	})
})
