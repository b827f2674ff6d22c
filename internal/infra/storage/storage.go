package storage

import (
	"context"
	"errors"
)

//go:generate mockgen -source=storage.go -destination=../../../test/unit/doubles/infra/storage/storage_mock.go -package=storage -mock_names=ObjectStorage=MockObjectStorage

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrEmptyObject    = errors.New("empty object")
)

type ObjectStorage interface {
	Upload(ctx context.Context, bucket, path, contentType string, data []byte) (string, error)
	PublicURL(bucket, path string) string
	Delete(ctx context.Context, bucket, path string) error
}

type Config struct {
	Provider        string
	Project         string
	CredentialsFile string
	Endpoint        string
	PublicBaseURL   string
}

func New(ctx context.Context, config Config) (ObjectStorage, error) {
	switch config.Provider {
	case "", "memory":
		return NewMemoryStorage(config.PublicBaseURL), nil
	case "gcs":
		return NewGCSStorage(ctx, config)
	default:
		return nil, errors.New("unknown storage provider: " + config.Provider)
	}
}
