package persistence_test

import (
	"context"
	"time"

	"easyrent-server/internal/infra/pubsub"
	"easyrent-server/internal/infra/sql"
	maintenanceDomain "easyrent-server/internal/maintenance/domain"
	"easyrent-server/internal/maintenance/persistence"
	"easyrent-server/internal/maintenance/usecases"
	shareddomain "easyrent-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("RequestRepository", func() {
	var (
		ctx        context.Context
		repository *persistence.SimpleRequestRepository
		ownerID    shareddomain.ID
	)

	newRequest := func(propertyID shareddomain.ID, priority string) maintenanceDomain.Request {
		request, err := maintenanceDomain.NewRequestBuilder().
			WithOwnerID(ownerID).
			WithPropertyID(propertyID).
			WithDescription("Heating does not start").
			WithPriority(priority).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return request
	}

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		ownerID = "owner-1"

		orm, err := sql.NewMemoryORM("", nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		repository, err = persistence.NewRequestRepository(pubsub.NewMemoryPublisherFactory(), orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.It("should round trip optional fields", func() {
		request := newRequest("property-1", "urgent")
		request.AssignedTo = "Plumbing Co"
		estimate := 250.5
		request.EstimatedCost = &estimate
		gomega.Expect(repository.Create(ctx, request)).To(gomega.Succeed())

		stored, err := repository.GetByID(ctx, request.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(stored.AssignedTo).To(gomega.Equal("Plumbing Co"))
		gomega.Expect(*stored.EstimatedCost).To(gomega.Equal(250.5))
		gomega.Expect(stored.ActualCost).To(gomega.BeNil())
		gomega.Expect(stored.CompletionDate).To(gomega.BeNil())
		gomega.Expect(stored.Priority).To(gomega.Equal(maintenanceDomain.PriorityUrgent))
	})

	ginkgo.It("should keep the completion date", func() {
		request := newRequest("property-1", "low")
		gomega.Expect(repository.Create(ctx, request)).To(gomega.Succeed())

		completedAt := time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC)
		gomega.Expect(request.Complete(nil, completedAt)).To(gomega.Succeed())
		gomega.Expect(repository.Update(ctx, request)).To(gomega.Succeed())

		stored, err := repository.GetByID(ctx, request.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(stored.Status).To(gomega.Equal(maintenanceDomain.StatusCompleted))
		gomega.Expect(stored.CompletionDate.Time.Equal(completedAt)).To(gomega.BeTrue())
	})

	ginkgo.It("should report unknown requests as not found", func() {
		_, err := repository.GetByID(ctx, "missing")
		gomega.Expect(err).To(gomega.MatchError(usecases.ErrRequestNotFound))
	})

	ginkgo.It("should list per owner and per property without deleted rows", func() {
		gomega.Expect(repository.Create(ctx, newRequest("property-1", "low"))).To(gomega.Succeed())
		gomega.Expect(repository.Create(ctx, newRequest("property-1", "high"))).To(gomega.Succeed())
		gomega.Expect(repository.Create(ctx, newRequest("property-2", "medium"))).To(gomega.Succeed())
		deleted := newRequest("property-1", "urgent")
		gomega.Expect(repository.Create(ctx, deleted)).To(gomega.Succeed())
		gomega.Expect(repository.Delete(ctx, deleted.ID)).To(gomega.Succeed())

		requests, total, err := repository.FindAllByOwner(ctx, ownerID, usecases.Pagination{Limit: 2})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(total).To(gomega.Equal(3))
		gomega.Expect(requests).To(gomega.HaveLen(2))

		requests, total, err = repository.FindAllByProperty(ctx, "property-1", usecases.Pagination{Limit: 10})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(total).To(gomega.Equal(2))
		gomega.Expect(requests).To(gomega.HaveLen(2))
	})
})
