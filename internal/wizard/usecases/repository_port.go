package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/wizard/usecases/repository_port_mock.go -package=usecases -mock_names=SessionRepository=MockSessionRepository,FileStage=MockFileStage

import (
	"context"
	"errors"
)

var (
	ErrSessionNotFound  = errors.New("wizard session not found")
	ErrFileNotFound     = errors.New("staged file not found")
	ErrUnknownFileField = errors.New("field does not accept files")
	ErrStartRejected    = errors.New("wizard cannot be started")
	ErrForeignFile      = errors.New("file was not staged for this wizard")
)

type SessionRepository interface {
	Get(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, session Session) error
	Delete(ctx context.Context, id string) error
}

// FileStage keeps uploaded bytes until the submission moves them to object
// storage.
type FileStage interface {
	Put(ctx context.Context, id string, data []byte) error
	Open(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}
