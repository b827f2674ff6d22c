package wizard

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Draft is the in-progress record built across wizard steps. It is
// immutable: every mutation returns a new Draft and leaves the receiver
// untouched.
type Draft struct {
	root map[string]any
}

func NewDraft(seed map[string]any) Draft {
	return Draft{}.Merge(seed)
}

// Merge deep-merges partial into the draft. Dotted keys address nested
// maps, maps are merged recursively, anything else (arrays included)
// replaces the previous value, and a nil value removes the key.
func (d Draft) Merge(partial map[string]any) Draft {
	root := cloneMap(d.root)
	if root == nil {
		root = map[string]any{}
	}
	mergeInto(root, expand(partial))
	return Draft{root: root}
}

func (d Draft) Set(path string, value any) Draft {
	return d.Merge(map[string]any{path: value})
}

func (d Draft) Delete(path string) Draft {
	return d.Merge(map[string]any{path: nil})
}

func (d Draft) Get(path string) (any, bool) {
	var current any = d.root
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = value
		case []any:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			current = node[i]
		default:
			return nil, false
		}
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

func (d Draft) Has(path string) bool {
	_, ok := d.Get(path)
	return ok
}

func (d Draft) String(path string) string {
	value, _ := d.Get(path)
	s, _ := value.(string)
	return strings.TrimSpace(s)
}

func (d Draft) Float(path string) (float64, bool) {
	value, ok := d.Get(path)
	if !ok {
		return 0, false
	}
	return toFloat(value)
}

func (d Draft) Int(path string) (int, bool) {
	f, ok := d.Float(path)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func (d Draft) Bool(path string) bool {
	value, _ := d.Get(path)
	b, _ := toBool(value)
	return b
}

func (d Draft) Slice(path string) []any {
	value, _ := d.Get(path)
	items, _ := value.([]any)
	return cloneSlice(items)
}

// Map returns a deep copy of the draft contents.
func (d Draft) Map() map[string]any {
	root := cloneMap(d.root)
	if root == nil {
		return map[string]any{}
	}
	return root
}

func (d Draft) Section(name string) map[string]any {
	value, _ := d.Get(name)
	section, _ := value.(map[string]any)
	return cloneMap(section)
}

func (d Draft) IsEmpty() bool {
	return len(d.root) == 0
}

func (d Draft) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Map())
}

func (d *Draft) UnmarshalJSON(data []byte) error {
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return err
	}
	*d = NewDraft(root)
	return nil
}

func expand(partial map[string]any) map[string]any {
	keys := make([]string, 0, len(partial))
	for k := range partial {
		keys = append(keys, k)
	}
	// shorter keys first so "address.city" lands inside an "address" set in the same partial
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})

	out := map[string]any{}
	for _, k := range keys {
		value := normalize(partial[k])
		segments := strings.Split(k, ".")
		node := out
		for _, segment := range segments[:len(segments)-1] {
			child, ok := node[segment].(map[string]any)
			if !ok {
				child = map[string]any{}
				node[segment] = child
			}
			node = child
		}
		last := segments[len(segments)-1]
		if existing, ok := node[last].(map[string]any); ok {
			if incoming, ok := value.(map[string]any); ok {
				mergeInto(existing, incoming)
				continue
			}
		}
		node[last] = value
	}
	return out
}

func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		if v == nil {
			delete(dst, k)
			continue
		}
		incoming, incomingIsMap := v.(map[string]any)
		existing, existingIsMap := dst[k].(map[string]any)
		if incomingIsMap && existingIsMap {
			mergeInto(existing, incoming)
			continue
		}
		if incomingIsMap {
			fresh := map[string]any{}
			mergeInto(fresh, incoming)
			dst[k] = fresh
			continue
		}
		dst[k] = v
	}
}

// normalize converts nested maps with non-string keys (as produced by some
// decoders) and typed slices into the generic shapes the draft works with.
func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = normalize(item)
		}
		return expand(out)
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			key, ok := k.(string)
			if !ok {
				continue
			}
			out[key] = normalize(item)
		}
		return expand(out)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	case []string:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneSlice(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return cloneMap(value)
	case []any:
		return cloneSlice(value)
	default:
		return value
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(v)
		return b, err == nil
	default:
		return false, false
	}
}
