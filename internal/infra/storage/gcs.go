package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gcs "google.golang.org/api/storage/v1"
)

const _defaultPublicBaseURL = "https://storage.googleapis.com"

var _ ObjectStorage = (*GCSStorage)(nil)

type GCSStorage struct {
	service       *gcs.Service
	publicBaseURL string
}

func NewGCSStorage(ctx context.Context, config Config, extra ...option.ClientOption) (*GCSStorage, error) {
	opts := make([]option.ClientOption, 0, len(extra)+2)
	if config.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.CredentialsFile))
	}
	if config.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(config.Endpoint))
	}
	opts = append(opts, extra...)

	service, err := gcs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating storage service: %w", err)
	}

	base := config.PublicBaseURL
	if base == "" {
		base = _defaultPublicBaseURL
	}

	return &GCSStorage{
		service:       service,
		publicBaseURL: strings.TrimRight(base, "/"),
	}, nil
}

func (s *GCSStorage) Upload(ctx context.Context, bucket, path, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyObject
	}

	object := &gcs.Object{
		Name:        path,
		ContentType: contentType,
	}

	created, err := s.service.Objects.
		Insert(bucket, object).
		Media(bytes.NewReader(data), googleapi.ContentType(contentType)).
		Context(ctx).
		Do()
	if err != nil {
		slog.Error("uploading object",
			slog.String("bucket", bucket),
			slog.String("path", path),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("uploading %s/%s: %w", bucket, path, err)
	}

	return created.Name, nil
}

func (s *GCSStorage) PublicURL(bucket, path string) string {
	return publicURL(s.publicBaseURL, bucket, path)
}

func (s *GCSStorage) Delete(ctx context.Context, bucket, path string) error {
	err := s.service.Objects.Delete(bucket, path).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return ErrObjectNotFound
		}
		return fmt.Errorf("deleting %s/%s: %w", bucket, path, err)
	}
	return nil
}

func publicURL(base, bucket, path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return base + "/" + url.PathEscape(bucket) + "/" + strings.Join(segments, "/")
}
