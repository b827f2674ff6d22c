package sql

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_queryTimeout = 5 * time.Second
	_dbTimeout    = 10 * time.Second
	maxRetries    = 10
)

type PostgreDatabase struct {
	url  string
	Conn *pgxpool.Pool
}

var (
	postgreInstance *PostgreDatabase
	postgreOnce     sync.Once
	postgreMutex    sync.RWMutex
)

func NewPosgreORM(dsn string) (*DB, error) {
	pass, ok := os.LookupEnv("EASYRENT_SERVER_POSTGRES_PASSWORD")
	if ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
		timeout:              _dbTimeout,
	}, nil
}

// NewORM wraps an already opened gorm connection, as used with sqlmock.
func NewORM(gormDB *gorm.DB, autoMigrate bool) *DB {
	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: autoMigrate,
		timeout:              _dbTimeout,
	}
}

func NewPosgreDatabase(url string) *PostgreDatabase {
	postgreMutex.Lock()
	defer postgreMutex.Unlock()

	postgreOnce.Do(func() {
		postgreInstance = &PostgreDatabase{
			url: url,
		}
	})

	return postgreInstance
}

func (d *PostgreDatabase) Open() error {
	for i := 0; i < maxRetries; i++ {
		conn, err := pgxpool.New(context.Background(), d.url)
		if err == nil {
			err = conn.Ping(context.Background())
		}

		if err != nil {
			time.Sleep(5 * time.Second)
		} else {
			d.Conn = conn
			return nil
		}
	}

	return fmt.Errorf("imposible to connect to database after %d retries", maxRetries)
}

func (d *PostgreDatabase) Close() {
	d.Conn.Close()
}

func (d *PostgreDatabase) Command(sql string) error {
	_, err := d.Conn.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	return nil
}

func (d *PostgreDatabase) Query(ctx context.Context, sql string, args ...any) ([][]byte, error) {
	queryCtx, cancelFn := context.WithTimeout(ctx, _queryTimeout)
	defer cancelFn()

	rows, err := d.Conn.Query(queryCtx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("postgre query: %w", err)
	}

	defer rows.Close()
	values := make([][]byte, 0)
	for rows.Next() {
		values = append(values, rows.RawValues()[0])
	}
	return values, nil
}

// Up applies the postgres migrations found in path, in file name order.
func (d *PostgreDatabase) Up(path string, replacements map[string]string) error {
	scripts, err := loadMigrations(path, replacements, postgresDialect)
	if err != nil {
		return err
	}

	for _, script := range scripts {
		if err := d.Command(script.body); err != nil {
			return fmt.Errorf("applying migration %s: %w", script.name, err)
		}
	}

	return nil
}
