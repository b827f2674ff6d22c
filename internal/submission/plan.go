package submission

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"slices"
	"strings"
	"time"

	"easyrent-server/internal/infra/utils"
)

const MaxFileSize = 10 << 20

type FileKind string

const (
	FileKindPhoto    FileKind = "photo"
	FileKindDocument FileKind = "document"
)

var allowedTypes = map[FileKind][]string{
	FileKindPhoto:    {"image/jpeg", "image/png"},
	FileKindDocument: {"application/pdf", "image/jpeg", "image/png"},
}

func AllowedTypes(kind FileKind) []string {
	return slices.Clone(allowedTypes[kind])
}

// Upload is a pending file. Key identifies it in the resulting URL map,
// usually the draft path and position ("photos.1").
type Upload struct {
	Key         string
	Kind        FileKind
	Bucket      string
	Path        string
	Name        string
	ContentType string
	Size        int64
	Load        func(ctx context.Context) ([]byte, error)
}

// Check applies the local size and type constraints.
func (u Upload) Check() error {
	if u.Size <= 0 {
		return ErrEmptyFile
	}
	if u.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	if !slices.Contains(allowedTypes[u.Kind], u.ContentType) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, u.ContentType)
	}
	return nil
}

// Insert writes one record. Table names the row for compensation; a Run
// that returns an empty id records nothing to undo.
type Insert struct {
	Op    string
	Table string
	Run   func(ctx context.Context, state *State) (string, error)
}

type Transition struct {
	Op  string
	Run func(ctx context.Context, state *State) error
}

// Plan is the ordered write protocol of one submission.
type Plan struct {
	Kind       string
	OwnerID    string
	Uploads    []Upload
	Primary    Insert
	Dependents []Insert
	Transition *Transition
}

// State is what earlier phases produced, visible to later ones.
type State struct {
	URLs      map[string]string
	PrimaryID string
	Created   map[string][]string
}

func newState() *State {
	return &State{
		URLs:    map[string]string{},
		Created: map[string][]string{},
	}
}

// URLsFor returns the public URLs of the uploads under prefix in key order,
// so "photos" yields photos.0, photos.1 and so on.
func (s *State) URLsFor(prefix string) []string {
	type entry struct {
		index int
		url   string
	}
	var entries []entry
	for key, url := range s.URLs {
		rest, ok := strings.CutPrefix(key, prefix+".")
		if !ok {
			continue
		}
		var index int
		if _, err := fmt.Sscanf(rest, "%d", &index); err != nil {
			continue
		}
		entries = append(entries, entry{index: index, url: url})
	}
	slices.SortFunc(entries, func(a, b entry) int { return a.index - b.index })

	urls := make([]string, len(entries))
	for i, e := range entries {
		urls[i] = e.url
	}
	return urls
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ObjectPath builds a collision resistant storage path of the form
// {prefix}/{timestamp}-{random}-{name}.
func ObjectPath(prefix, name string, now time.Time) string {
	base := unsafeName.ReplaceAllString(path.Base(strings.TrimSpace(name)), "_")
	if base == "" || base == "." || base == "/" {
		base = "file"
	}
	return fmt.Sprintf("%s/%d-%s-%s", strings.Trim(prefix, "/"), now.UnixMilli(), utils.GenerateHEX(4), base)
}
