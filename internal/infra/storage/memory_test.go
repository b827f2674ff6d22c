package storage_test

import (
	"context"

	"easyrent-server/internal/infra/storage"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("MemoryStorage", func() {
	var (
		ctx   context.Context
		store *storage.MemoryStorage
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		store = storage.NewMemoryStorage("https://files.example.com/")
	})

	ginkgo.It("should store and delete objects", func() {
		path, err := store.Upload(ctx, "property_photos", "owner/1-abc-front.jpg", "image/jpeg", []byte{0xff, 0xd8})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(path).To(gomega.Equal("owner/1-abc-front.jpg"))

		object, ok := store.Get("property_photos", path)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(object.ContentType).To(gomega.Equal("image/jpeg"))

		gomega.Expect(store.Delete(ctx, "property_photos", path)).To(gomega.Succeed())
		gomega.Expect(store.Len()).To(gomega.Equal(0))
		gomega.Expect(store.Delete(ctx, "property_photos", path)).To(gomega.MatchError(storage.ErrObjectNotFound))
	})

	ginkgo.It("should reject empty objects", func() {
		_, err := store.Upload(ctx, "b", "p", "image/png", nil)
		gomega.Expect(err).To(gomega.MatchError(storage.ErrEmptyObject))
	})

	ginkgo.It("should build escaped public urls", func() {
		url := store.PublicURL("tenant_documents", "id_document/1-abc-my passport.pdf")
		gomega.Expect(url).To(gomega.Equal("https://files.example.com/tenant_documents/id_document/1-abc-my%20passport.pdf"))
	})
})

var _ = ginkgo.Describe("New", func() {
	ginkgo.It("should default to memory storage", func() {
		store, err := storage.New(context.Background(), storage.Config{})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(store).To(gomega.BeAssignableToTypeOf(&storage.MemoryStorage{}))
	})

	ginkgo.It("should reject unknown providers", func() {
		_, err := storage.New(context.Background(), storage.Config{Provider: "s3"})
		gomega.Expect(err).To(gomega.HaveOccurred())
	})
})
