package submission

import (
	"context"
	"strconv"
	"time"

	"easyrent-server/internal/wizard"
)

// FileSource returns the bytes of a staged file.
type FileSource interface {
	Open(ctx context.Context, fileID string) ([]byte, error)
}

// Target says where the files of one draft array go. Prefix defaults to
// the field name.
type Target struct {
	Field  string
	Kind   FileKind
	Bucket string
	Prefix string
}

// PendingUploads turns the file handles found in the target arrays into
// uploads keyed by "{field}.{index}". Entries that are already URLs are
// skipped.
func PendingUploads(draft wizard.Draft, files FileSource, now time.Time, targets ...Target) []Upload {
	var uploads []Upload
	for _, target := range targets {
		prefix := target.Prefix
		if prefix == "" {
			prefix = target.Field
		}

		for i, item := range draft.Slice(target.Field) {
			ref, ok := wizard.FileRefFromValue(item)
			if !ok {
				continue
			}
			uploads = append(uploads, Upload{
				Key:         target.Field + "." + strconv.Itoa(i),
				Kind:        target.Kind,
				Bucket:      target.Bucket,
				Path:        ObjectPath(prefix, ref.Name, now),
				Name:        ref.Name,
				ContentType: ref.ContentType,
				Size:        ref.Size,
				Load: func(ctx context.Context) ([]byte, error) {
					return files.Open(ctx, ref.ID)
				},
			})
		}
	}
	return uploads
}

// ResolveFiles returns the array at field as URLs, replacing every handle
// with the URL its upload produced.
func ResolveFiles(draft wizard.Draft, field string, state *State) []string {
	items := draft.Slice(field)
	urls := make([]string, 0, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case string:
			if v != "" {
				urls = append(urls, v)
			}
		default:
			if url, ok := state.URLs[field+"."+strconv.Itoa(i)]; ok {
				urls = append(urls, url)
			}
		}
	}
	return urls
}
