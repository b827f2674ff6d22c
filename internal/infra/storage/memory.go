package storage

import (
	"context"
	"strings"
	"sync"
)

var _ ObjectStorage = (*MemoryStorage)(nil)

type MemoryObject struct {
	ContentType string
	Data        []byte
}

type MemoryStorage struct {
	mu            sync.RWMutex
	objects       map[string]MemoryObject
	publicBaseURL string
}

func NewMemoryStorage(publicBaseURL string) *MemoryStorage {
	if publicBaseURL == "" {
		publicBaseURL = "http://localhost:3000/files"
	}
	return &MemoryStorage{
		objects:       make(map[string]MemoryObject),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *MemoryStorage) Upload(_ context.Context, bucket, path, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyObject
	}

	stored := make([]byte, len(data))
	copy(stored, data)

	s.mu.Lock()
	s.objects[key(bucket, path)] = MemoryObject{ContentType: contentType, Data: stored}
	s.mu.Unlock()

	return path, nil
}

func (s *MemoryStorage) PublicURL(bucket, path string) string {
	return publicURL(s.publicBaseURL, bucket, path)
}

func (s *MemoryStorage) Delete(_ context.Context, bucket, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(bucket, path)
	if _, ok := s.objects[k]; !ok {
		return ErrObjectNotFound
	}
	delete(s.objects, k)
	return nil
}

func (s *MemoryStorage) Get(bucket, path string) (MemoryObject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	object, ok := s.objects[key(bucket, path)]
	return object, ok
}

func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

func key(bucket, path string) string {
	return bucket + "/" + path
}
