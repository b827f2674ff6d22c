package wizard

import (
	"fmt"
	"strings"

	goskema "github.com/reoring/goskema"
)

const (
	CodeRequired      = goskema.CodeRequired
	CodeInvalidType   = goskema.CodeInvalidType
	CodeTooShort      = goskema.CodeTooShort
	CodeTooLong       = goskema.CodeTooLong
	CodeTooSmall      = goskema.CodeTooSmall
	CodeTooBig        = goskema.CodeTooBig
	CodeInvalidEnum   = goskema.CodeInvalidEnum
	CodeInvalidFormat = goskema.CodeInvalidFormat
	CodeInvalidDate   = "invalid_date"
	CodeInvalidValue  = "invalid_value"
)

// Issue is a single validation failure keyed by the dotted path of the
// offending field.
type Issue struct {
	Path    string `json:"path" msgpack:"path"`
	Code    string `json:"code" msgpack:"code"`
	Message string `json:"message" msgpack:"message"`
}

type Issues []Issue

// Map keeps the first message per path.
func (i Issues) Map() map[string]string {
	out := make(map[string]string, len(i))
	for _, issue := range i {
		if _, ok := out[issue.Path]; !ok {
			out[issue.Path] = issue.Message
		}
	}
	return out
}

func (i Issues) Has(path string) bool {
	for _, issue := range i {
		if issue.Path == path {
			return true
		}
	}
	return false
}

func (i Issues) Paths() []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(i))
	for _, issue := range i {
		if _, ok := seen[issue.Path]; ok {
			continue
		}
		seen[issue.Path] = struct{}{}
		out = append(out, issue.Path)
	}
	return out
}

type ValidationError struct {
	Section string
	Issues  Issues
}

func (e *ValidationError) Error() string {
	paths := e.Issues.Paths()
	if len(paths) == 0 {
		return fmt.Sprintf("section %s is invalid", e.Section)
	}
	return fmt.Sprintf("section %s is invalid: %s", e.Section, strings.Join(paths, ", "))
}
