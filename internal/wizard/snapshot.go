package wizard

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is the serialisable state of a Controller.
type Snapshot struct {
	Kind    Kind              `msgpack:"kind"`
	Current int               `msgpack:"current"`
	Draft   map[string]any    `msgpack:"draft"`
	Errors  map[string]Issues `msgpack:"errors"`
	Status  Status            `msgpack:"status"`
	Failure *Failure          `msgpack:"failure"`
	Result  *Result           `msgpack:"result"`
}

func (c *Controller) Snapshot() Snapshot {
	errs := make(map[string]Issues, len(c.errors))
	for section, issues := range c.errors {
		errs[section] = append(Issues(nil), issues...)
	}

	return Snapshot{
		Kind:    c.definition.Kind,
		Current: c.current,
		Draft:   c.draft.Map(),
		Errors:  errs,
		Status:  c.status,
		Failure: c.failure,
		Result:  c.result,
	}
}

func Restore(definition Definition, snapshot Snapshot) (*Controller, error) {
	if snapshot.Kind != definition.Kind {
		return nil, fmt.Errorf("restoring %s snapshot as %s: %w", snapshot.Kind, definition.Kind, ErrUnknownKind)
	}
	if snapshot.Current < 0 || snapshot.Current > definition.Last() {
		return nil, ErrStepOutOfRange
	}

	errs := snapshot.Errors
	if errs == nil {
		errs = map[string]Issues{}
	}
	status := snapshot.Status
	if status == "" {
		status = StatusEditing
	}

	return &Controller{
		definition: definition,
		current:    snapshot.Current,
		draft:      NewDraft(snapshot.Draft),
		errors:     errs,
		status:     status,
		failure:    snapshot.Failure,
		result:     snapshot.Result,
	}, nil
}

func (s Snapshot) Marshal() ([]byte, error) {
	return msgpack.Marshal(s)
}

func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decoding wizard snapshot: %w", err)
	}
	return s, nil
}
