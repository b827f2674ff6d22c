package persistence

import (
	"context"
	"fmt"
	"time"

	"easyrent-server/internal/infra/cache"
	"easyrent-server/internal/submission"
	"easyrent-server/internal/wizard/usecases"
)

func NewCacheFileStage(c cache.Cache, ttl time.Duration) *CacheFileStage {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CacheFileStage{
		cache:     c,
		keyPrefix: "wizard_file:",
		ttl:       ttl,
	}
}

var (
	_ usecases.FileStage    = (*CacheFileStage)(nil)
	_ submission.FileSource = (*CacheFileStage)(nil)
)

type CacheFileStage struct {
	cache     cache.Cache
	keyPrefix string
	ttl       time.Duration
}

func (s *CacheFileStage) Put(ctx context.Context, id string, data []byte) error {
	if !s.cache.Set(ctx, s.keyPrefix+id, data, s.ttl) {
		return fmt.Errorf("staging file %s: %w", id, errCacheWrite)
	}
	return nil
}

func (s *CacheFileStage) Open(ctx context.Context, id string) ([]byte, error) {
	value, found := s.cache.Get(ctx, s.keyPrefix+id)
	if !found {
		return nil, fmt.Errorf("%w: %s", usecases.ErrFileNotFound, id)
	}
	data, ok := value.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: %s", usecases.ErrFileNotFound, id)
	}
	return data, nil
}

func (s *CacheFileStage) Delete(ctx context.Context, id string) error {
	s.cache.Delete(ctx, s.keyPrefix+id)
	return nil
}
