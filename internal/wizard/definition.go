package wizard

import "errors"

var ErrUnknownKind = errors.New("unknown wizard kind")

type Kind string

// Step is one page of a wizard. Section names the error map the step owns.
type Step struct {
	ID       string
	Section  string
	Schema   Schema
	Renderer string
}

type Definition struct {
	Kind  Kind
	Steps []Step
}

func (d Definition) Len() int {
	return len(d.Steps)
}

func (d Definition) Last() int {
	return len(d.Steps) - 1
}

func (d Definition) Index(stepID string) int {
	for i, step := range d.Steps {
		if step.ID == stepID {
			return i
		}
	}
	return -1
}

// Registry holds the definitions of every wizard the service runs.
type Registry map[Kind]Definition

func NewRegistry(definitions ...Definition) Registry {
	r := Registry{}
	for _, d := range definitions {
		r[d.Kind] = d
	}
	return r
}

func (r Registry) Get(kind Kind) (Definition, error) {
	d, ok := r[kind]
	if !ok {
		return Definition{}, ErrUnknownKind
	}
	return d, nil
}
