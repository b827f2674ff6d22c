package sql

import (
	"database/sql/driver"
	"fmt"

	"github.com/goccy/go-json"
)

// JSON stores any JSON-serialisable value in a text/jsonb column.
type JSON[T any] struct {
	Data T
}

func NewJSON[T any](data T) JSON[T] {
	return JSON[T]{Data: data}
}

func (j JSON[T]) Value() (driver.Value, error) {
	data, err := json.Marshal(j.Data)
	if err != nil {
		return nil, fmt.Errorf("encoding json column: %w", err)
	}
	return string(data), nil
}

func (j *JSON[T]) Scan(src any) error {
	var data []byte

	switch val := src.(type) {
	case string:
		data = []byte(val)
	case []byte:
		data = val
	case nil:
		var zero T
		j.Data = zero
		return nil
	default:
		return fmt.Errorf("scanning json column: unsupported type %T", src)
	}

	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, &j.Data)
}
