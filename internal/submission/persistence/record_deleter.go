package persistence

import (
	"context"
	"fmt"
	"slices"

	"easyrent-server/internal/infra/sql"
	"easyrent-server/internal/submission"
)

var _ submission.RecordDeleter = (*SQLRecordDeleter)(nil)

// SQLRecordDeleter hard-deletes rows written by a failed submission. Only
// tables registered at construction can be targeted.
type SQLRecordDeleter struct {
	orm    sql.ORM
	tables []string
}

func NewRecordDeleter(orm sql.ORM, tables ...string) *SQLRecordDeleter {
	return &SQLRecordDeleter{
		orm:    orm,
		tables: tables,
	}
}

func (d *SQLRecordDeleter) DeleteRecord(ctx context.Context, table, id string) error {
	if !slices.Contains(d.tables, table) {
		return fmt.Errorf("%w: %s", submission.ErrUnknownRecordTable, table)
	}

	err := d.orm.
		WithContext(ctx).
		Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id).
		Error()
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", table, id, err)
	}
	return nil
}
