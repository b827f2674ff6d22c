package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"easyrent-server/internal/infra/cache"
	"easyrent-server/internal/wizard/usecases"

	"github.com/vmihailenco/msgpack/v5"
)

var errCacheWrite = errors.New("cache rejected the write")

type CacheSessionRepositoryConfig struct {
	Cache     cache.Cache
	KeyPrefix string
	TTL       time.Duration
}

func DefaultCacheSessionRepositoryConfig() *CacheSessionRepositoryConfig {
	return &CacheSessionRepositoryConfig{
		KeyPrefix: "wizard_session:",
		TTL:       24 * time.Hour,
	}
}

// NewCacheSessionRepository stores sessions msgpack encoded so the redis
// and in-process caches hold the same bytes.
func NewCacheSessionRepository(config *CacheSessionRepositoryConfig) (*CacheSessionRepository, error) {
	if config == nil {
		config = DefaultCacheSessionRepositoryConfig()
	}
	if config.Cache == nil {
		return nil, fmt.Errorf("cache instance is required")
	}

	return &CacheSessionRepository{
		cache:     config.Cache,
		keyPrefix: config.KeyPrefix,
		ttl:       config.TTL,
	}, nil
}

var _ usecases.SessionRepository = (*CacheSessionRepository)(nil)

type CacheSessionRepository struct {
	cache     cache.Cache
	keyPrefix string
	ttl       time.Duration
}

func (r *CacheSessionRepository) Get(ctx context.Context, id string) (usecases.Session, error) {
	value, found := r.cache.Get(ctx, r.key(id))
	if !found {
		return usecases.Session{}, usecases.ErrSessionNotFound
	}

	data, ok := value.([]byte)
	if !ok {
		slog.Error("unexpected wizard session encoding", slog.String("session_id", id))
		return usecases.Session{}, usecases.ErrSessionNotFound
	}

	var session usecases.Session
	if err := msgpack.Unmarshal(data, &session); err != nil {
		return usecases.Session{}, fmt.Errorf("decoding wizard session: %w", err)
	}
	return session, nil
}

func (r *CacheSessionRepository) Save(ctx context.Context, session usecases.Session) error {
	data, err := msgpack.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding wizard session: %w", err)
	}

	if !r.cache.Set(ctx, r.key(session.ID), data, r.ttl) {
		return fmt.Errorf("storing wizard session %s: %w", session.ID, errCacheWrite)
	}
	return nil
}

func (r *CacheSessionRepository) Delete(ctx context.Context, id string) error {
	r.cache.Delete(ctx, r.key(id))
	return nil
}

func (r *CacheSessionRepository) key(id string) string {
	return r.keyPrefix + id
}
