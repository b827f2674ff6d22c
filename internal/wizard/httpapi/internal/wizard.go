package internal

import (
	"easyrent-server/internal/wizard"
	"easyrent-server/internal/wizard/usecases"
)

type StartRequest struct {
	Params map[string]string `json:"params"`
	Seed   map[string]any    `json:"seed"`
}

type JumpRequest struct {
	Step int `json:"step"`
}

type WizardResponse struct {
	ID        string                       `json:"id"`
	Kind      string                       `json:"kind"`
	SubjectID string                       `json:"subject_id,omitempty"`
	Step      int                          `json:"step"`
	StepID    string                       `json:"step_id"`
	Steps     []string                     `json:"steps"`
	IsLast    bool                         `json:"is_last"`
	Status    string                       `json:"status"`
	Draft     map[string]any               `json:"draft"`
	Errors    map[string]map[string]string `json:"errors"`
	Failure   *wizard.Failure              `json:"failure,omitempty"`
	Result    *wizard.Result               `json:"result,omitempty"`
}

type FileResponse struct {
	File   wizard.FileRef `json:"file"`
	Wizard WizardResponse `json:"wizard"`
}

func ToWizardResponse(view usecases.View) WizardResponse {
	errs := view.Errors
	if errs == nil {
		errs = map[string]map[string]string{}
	}
	draft := view.Draft
	if draft == nil {
		draft = map[string]any{}
	}

	return WizardResponse{
		ID:        view.ID,
		Kind:      string(view.Kind),
		SubjectID: view.SubjectID,
		Step:      view.Step,
		StepID:    view.StepID,
		Steps:     view.Steps,
		IsLast:    view.IsLast,
		Status:    string(view.Status),
		Draft:     draft,
		Errors:    errs,
		Failure:   view.Failure,
		Result:    view.Result,
	}
}
