package wizard

// FileRef is a pending file handle stored in a draft array. The bytes live
// in a staging area until the submission uploads them.
type FileRef struct {
	ID          string `json:"file_id" msgpack:"file_id"`
	Name        string `json:"name" msgpack:"name"`
	ContentType string `json:"content_type" msgpack:"content_type"`
	Size        int64  `json:"size" msgpack:"size"`
}

func (f FileRef) Value() map[string]any {
	return map[string]any{
		"file_id":      f.ID,
		"name":         f.Name,
		"content_type": f.ContentType,
		"size":         float64(f.Size),
	}
}

// FileRefFromValue recognises a pending handle. Plain strings are already
// public URLs and are not handles.
func FileRefFromValue(value any) (FileRef, bool) {
	m, ok := value.(map[string]any)
	if !ok {
		return FileRef{}, false
	}
	id, _ := m["file_id"].(string)
	if id == "" {
		return FileRef{}, false
	}
	name, _ := m["name"].(string)
	contentType, _ := m["content_type"].(string)
	size, _ := toFloat(m["size"])
	return FileRef{
		ID:          id,
		Name:        name,
		ContentType: contentType,
		Size:        int64(size),
	}, true
}

// AppendFile adds a pending handle to the array at path.
func (d Draft) AppendFile(path string, ref FileRef) Draft {
	items := d.Slice(path)
	items = append(items, ref.Value())
	return d.Set(path, items)
}

// RemoveFile drops the handle with the given id from the array at path.
func (d Draft) RemoveFile(path, fileID string) (Draft, bool) {
	items := d.Slice(path)
	kept := make([]any, 0, len(items))
	removed := false
	for _, item := range items {
		if ref, ok := FileRefFromValue(item); ok && ref.ID == fileID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return d, false
	}
	return d.Set(path, kept), true
}

// PendingFiles lists every file handle in the draft by its array path.
func (d Draft) PendingFiles() map[string][]FileRef {
	out := map[string][]FileRef{}
	collectFiles("", d.root, out)
	return out
}

func collectFiles(prefix string, node any, out map[string][]FileRef) {
	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			path := k
			if prefix != "" {
				path = prefix + "." + k
			}
			collectFiles(path, child, out)
		}
	case []any:
		for _, item := range v {
			if ref, ok := FileRefFromValue(item); ok {
				out[prefix] = append(out[prefix], ref)
			}
		}
	}
}
