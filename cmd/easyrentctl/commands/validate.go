package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	onboardingUsecases "easyrent-server/internal/onboarding/usecases"
	propertyUsecases "easyrent-server/internal/property/usecases"
	"easyrent-server/internal/wizard"
)

var errInvalidDraft = errors.New("draft is invalid")

// Report is what validate prints: the first message per field, grouped by
// the section of the step that owns it.
type Report struct {
	Kind     wizard.Kind                  `json:"kind"`
	Valid    bool                         `json:"valid"`
	Sections map[string]map[string]string `json:"sections,omitempty"`
}

func validateCmd() *cobra.Command {
	var step string

	cmd := &cobra.Command{
		Use:   "validate <kind> <file>",
		Short: "Check a wizard draft stored as YAML or JSON",
		Long: "Runs the step schemas of the property or onboarding wizard against a draft file " +
			"and prints the issues found. Exits non zero when the draft is invalid.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := wizard.NewRegistry(propertyUsecases.WizardDefinition(), onboardingUsecases.WizardDefinition())
			definition, err := registry.Get(wizard.Kind(args[0]))
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}

			draft, err := loadDraft(args[1])
			if err != nil {
				return err
			}

			report, err := validateDraft(definition, draft, step)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(report); err != nil {
				return err
			}

			if !report.Valid {
				return errInvalidDraft
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&step, "step", "", "only validate the step with this id")
	return cmd
}

func validateDraft(definition wizard.Definition, draft wizard.Draft, stepID string) (Report, error) {
	steps := definition.Steps
	if stepID != "" {
		index := definition.Index(stepID)
		if index < 0 {
			return Report{}, fmt.Errorf("unknown step %q for %s", stepID, definition.Kind)
		}
		steps = steps[index : index+1]
	}

	report := Report{Kind: definition.Kind, Valid: true, Sections: map[string]map[string]string{}}
	for _, s := range steps {
		issues := s.Schema.Validate(draft)
		if len(issues) == 0 {
			continue
		}
		report.Valid = false
		section := report.Sections[s.Section]
		if section == nil {
			section = map[string]string{}
			report.Sections[s.Section] = section
		}
		for path, message := range issues.Map() {
			if _, ok := section[path]; !ok {
				section[path] = message
			}
		}
	}
	return report, nil
}

func loadDraft(path string) (wizard.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return wizard.Draft{}, fmt.Errorf("reading draft: %w", err)
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return wizard.Draft{}, fmt.Errorf("decoding draft %s: %w", path, err)
	}

	return wizard.NewDraft(raw), nil
}
