package wizard

import (
	"context"
	"errors"
)

var (
	ErrSubmissionInProgress = errors.New("submission in progress")
	ErrAlreadySubmitted     = errors.New("wizard already submitted")
	ErrNotFinalStep         = errors.New("submit is only allowed from the final step")
	ErrStepOutOfRange       = errors.New("step out of range")
	ErrSubmissionAbandoned  = errors.New("submission was interrupted before it finished")
)

const PhasePrecheck = "precheck"

type Status string

const (
	StatusEditing    Status = "editing"
	StatusSubmitting Status = "submitting"
	StatusSubmitted  Status = "submitted"
)

// Result is what a successful submission produced.
type Result struct {
	PrimaryID string              `json:"primary_id" msgpack:"primary_id"`
	Created   map[string][]string `json:"created" msgpack:"created"`
	JournalID string              `json:"journal_id,omitempty" msgpack:"journal_id"`
}

// Failure is the top-level error slot shown after a failed submission.
type Failure struct {
	Phase   string `json:"phase" msgpack:"phase"`
	Op      string `json:"op,omitempty" msgpack:"op"`
	Message string `json:"message" msgpack:"message"`
}

// PhasedError is implemented by submission errors that know which phase
// and sub-operation failed.
type PhasedError interface {
	error
	SubmissionPhase() string
	SubmissionOp() string
}

type Submitter interface {
	Submit(ctx context.Context, draft Draft) (Result, error)
}

type SubmitterFunc func(ctx context.Context, draft Draft) (Result, error)

func (f SubmitterFunc) Submit(ctx context.Context, draft Draft) (Result, error) {
	return f(ctx, draft)
}

// Controller is the step state machine of one wizard session. It performs
// no I/O apart from the submitter it is handed.
type Controller struct {
	definition Definition
	current    int
	draft      Draft
	errors     map[string]Issues
	status     Status
	failure    *Failure
	result     *Result
}

func NewController(definition Definition, seed Draft) *Controller {
	return &Controller{
		definition: definition,
		draft:      seed,
		errors:     map[string]Issues{},
		status:     StatusEditing,
	}
}

func (c *Controller) Definition() Definition { return c.definition }
func (c *Controller) CurrentIndex() int      { return c.current }
func (c *Controller) Current() Step          { return c.definition.Steps[c.current] }
func (c *Controller) Draft() Draft           { return c.draft }
func (c *Controller) Status() Status         { return c.status }
func (c *Controller) Failure() *Failure      { return c.failure }
func (c *Controller) Result() *Result        { return c.result }

func (c *Controller) IsLast() bool {
	return c.current == c.definition.Last()
}

func (c *Controller) Errors(section string) Issues {
	return c.errors[section]
}

// AllErrors returns path to message maps keyed by section.
func (c *Controller) AllErrors() map[string]map[string]string {
	out := make(map[string]map[string]string, len(c.errors))
	for section, issues := range c.errors {
		if len(issues) > 0 {
			out[section] = issues.Map()
		}
	}
	return out
}

func (c *Controller) Update(partial map[string]any) error {
	if err := c.ensureEditable(); err != nil {
		return err
	}
	c.draft = c.draft.Merge(partial)
	return nil
}

func (c *Controller) Set(path string, value any) error {
	return c.Update(map[string]any{path: value})
}

// Replace swaps the whole draft, used by file staging which edits arrays.
func (c *Controller) Replace(draft Draft) error {
	if err := c.ensureEditable(); err != nil {
		return err
	}
	c.draft = draft
	return nil
}

// Advance validates the current step and moves forward on success. On the
// last step a successful validation leaves the index unchanged.
func (c *Controller) Advance() error {
	if err := c.ensureEditable(); err != nil {
		return err
	}

	if err := c.validateStep(c.current); err != nil {
		return err
	}

	if c.current < c.definition.Last() {
		c.current++
	}
	return nil
}

// Retreat moves one step back without validating.
func (c *Controller) Retreat() error {
	if err := c.ensureEditable(); err != nil {
		return err
	}
	if c.current > 0 {
		c.current--
	}
	return nil
}

// JumpTo moves backwards freely. Moving forwards requires every step from
// the current one up to the target to validate; otherwise the index stays
// and the first failing step's errors are recorded.
func (c *Controller) JumpTo(index int) error {
	if err := c.ensureEditable(); err != nil {
		return err
	}
	if index < 0 || index > c.definition.Last() {
		return ErrStepOutOfRange
	}

	for i := c.current; i < index; i++ {
		if err := c.validateStep(i); err != nil {
			return err
		}
	}
	c.current = index
	return nil
}

// Validate runs the schema of a step against the draft without moving.
func (c *Controller) Validate(index int) Issues {
	step := c.definition.Steps[index]
	return step.Schema.Validate(c.draft)
}

// BeginSubmit runs the pre-check and freezes the draft. Callers that
// persist the session between the two halves use it with CompleteSubmit.
func (c *Controller) BeginSubmit() error {
	switch c.status {
	case StatusSubmitting:
		return ErrSubmissionInProgress
	case StatusSubmitted:
		return ErrAlreadySubmitted
	}

	if !c.IsLast() {
		return ErrNotFinalStep
	}

	if err := c.validateStep(c.current); err != nil {
		c.failure = &Failure{Phase: PhasePrecheck, Message: err.Error()}
		return err
	}

	c.failure = nil
	c.status = StatusSubmitting
	return nil
}

// CompleteSubmit records the outcome. A failed submission unfreezes the
// draft so the user can correct it and try again.
func (c *Controller) CompleteSubmit(result Result, err error) {
	if err != nil {
		c.status = StatusEditing
		c.failure = failureFrom(err)
		c.result = nil
		return
	}

	c.status = StatusSubmitted
	c.failure = nil
	c.result = &result
}

// Abandon unfreezes a submission that will never complete, for instance
// after the process running it died.
func (c *Controller) Abandon() bool {
	if c.status != StatusSubmitting {
		return false
	}
	c.CompleteSubmit(Result{}, ErrSubmissionAbandoned)
	return true
}

func (c *Controller) Submit(ctx context.Context, submitter Submitter) (Result, error) {
	if err := c.BeginSubmit(); err != nil {
		return Result{}, err
	}

	result, err := submitter.Submit(ctx, c.draft)
	c.CompleteSubmit(result, err)
	return result, err
}

func (c *Controller) validateStep(index int) error {
	step := c.definition.Steps[index]
	issues := step.Schema.Validate(c.draft)
	if len(issues) > 0 {
		c.record(index, issues)
		return &ValidationError{Section: step.Section, Issues: issues}
	}
	delete(c.errors, step.Section)
	c.clearResolved(index)
	return nil
}

// record files each issue under the earliest step whose own schema reports
// its path, so a final step that rechecks the whole draft does not claim the
// errors of earlier sections.
func (c *Controller) record(index int, issues Issues) {
	earlier := make([]Issues, index)
	for i := range earlier {
		earlier[i] = c.definition.Steps[i].Schema.Validate(c.draft)
	}

	bySection := map[string]Issues{}
	for _, issue := range issues {
		section := c.definition.Steps[index].Section
		for i, found := range earlier {
			if found.Has(issue.Path) {
				section = c.definition.Steps[i].Section
				break
			}
		}
		bySection[section] = append(bySection[section], issue)
	}

	delete(c.errors, c.definition.Steps[index].Section)
	for section, found := range bySection {
		c.errors[section] = found
	}
}

// clearResolved drops the errors of earlier sections that now validate.
func (c *Controller) clearResolved(index int) {
	for _, step := range c.definition.Steps[:index] {
		if _, ok := c.errors[step.Section]; !ok {
			continue
		}
		if len(step.Schema.Validate(c.draft)) == 0 {
			delete(c.errors, step.Section)
		}
	}
}

func (c *Controller) ensureEditable() error {
	switch c.status {
	case StatusSubmitting:
		return ErrSubmissionInProgress
	case StatusSubmitted:
		return ErrAlreadySubmitted
	default:
		return nil
	}
}

func failureFrom(err error) *Failure {
	var phased PhasedError
	if errors.As(err, &phased) {
		return &Failure{
			Phase:   phased.SubmissionPhase(),
			Op:      phased.SubmissionOp(),
			Message: err.Error(),
		}
	}
	return &Failure{Message: err.Error()}
}
