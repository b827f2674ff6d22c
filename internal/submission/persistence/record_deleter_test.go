package persistence_test

import (
	"context"
	"errors"
	"regexp"

	"easyrent-server/internal/infra/sql"
	"easyrent-server/internal/submission"
	"easyrent-server/internal/submission/persistence"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = ginkgo.Describe("RecordDeleter", func() {
	var (
		ctx     context.Context
		mock    sqlmock.Sqlmock
		deleter *persistence.SQLRecordDeleter
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()

		conn, m, err := sqlmock.New()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		mock = m

		gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
			SkipDefaultTransaction: true,
			Logger:                 logger.Default.LogMode(logger.Silent),
		})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		deleter = persistence.NewRecordDeleter(sql.NewORM(gormDB, false), "tenant_profiles", "tenant_documents")
	})

	ginkgo.AfterEach(func() {
		gomega.Expect(mock.ExpectationsWereMet()).To(gomega.Succeed())
	})

	ginkgo.It("should delete the row by id", func() {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tenant_profiles WHERE id = $1")).
			WithArgs("t-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		gomega.Expect(deleter.DeleteRecord(ctx, "tenant_profiles", "t-1")).To(gomega.Succeed())
	})

	ginkgo.It("should surface database errors", func() {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tenant_documents WHERE id = $1")).
			WithArgs("d-1").
			WillReturnError(errors.New("deadlock detected"))

		err := deleter.DeleteRecord(ctx, "tenant_documents", "d-1")
		gomega.Expect(err).To(gomega.HaveOccurred())
		gomega.Expect(err.Error()).To(gomega.ContainSubstring("deadlock detected"))
	})

	ginkgo.It("should refuse tables it was not given", func() {
		err := deleter.DeleteRecord(ctx, "users", "u-1")
		gomega.Expect(err).To(gomega.MatchError(submission.ErrUnknownRecordTable))
	})
})
