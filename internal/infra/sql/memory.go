package sql

import (
	"fmt"

	"easyrent-server/internal/infra/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewMemoryORM opens a private sqlite database. Each call gets its own
// database so tests do not see each other's rows.
func NewMemoryORM(migrationsPath string, replacements map[string]string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", utils.GenerateHEX(8))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite in-memory db: %w", err)
	}

	if err := runMigrations(gormDB, migrationsPath, replacements, sqliteDialect); err != nil {
		return nil, err
	}

	return &DB{DB: gormDB, autoMigrationEnabled: true}, nil
}
