package sql

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gorm.io/gorm"
)

const (
	postgresDialect = "postgres"
	sqliteDialect   = "sqlite"
)

type migration struct {
	name string
	body string
}

// loadMigrations reads <path>/*.<dialect>.sql and replaces every ${key}
// with its value. A missing directory means there is nothing to apply.
func loadMigrations(path string, replacements map[string]string, dialect string) ([]migration, error) {
	if path == "" {
		return nil, nil
	}

	files, err := filepath.Glob(filepath.Join(path, "*."+dialect+".sql"))
	if err != nil {
		return nil, fmt.Errorf("listing migrations: %w", err)
	}
	sort.Strings(files)

	scripts := make([]migration, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading migration %s: %w", file, err)
		}

		body := string(content)
		for key, value := range replacements {
			body = strings.ReplaceAll(body, "${"+key+"}", value)
		}

		scripts = append(scripts, migration{name: filepath.Base(file), body: body})
	}

	return scripts, nil
}

func runMigrations(db *gorm.DB, path string, replacements map[string]string, dialect string) error {
	scripts, err := loadMigrations(path, replacements, dialect)
	if err != nil {
		return err
	}

	for _, script := range scripts {
		if err := db.Exec(script.body).Error; err != nil {
			return fmt.Errorf("applying migration %s: %w", script.name, err)
		}
	}

	return nil
}
