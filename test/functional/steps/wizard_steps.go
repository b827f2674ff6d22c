package steps

import (
	"net/http"
)

// pngHeader is enough for content sniffing to see a PNG.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func (fc *FeatureContext) iStartAWizard(kind string) error {
	if err := fc.capture(fc.apiDriver.StartWizard(kind, nil)); err != nil {
		return err
	}
	if id, ok := fc.responseData["id"].(string); ok {
		fc.wizardID = id
	}
	return nil
}

func (fc *FeatureContext) iChooseThePropertyType(propertyType string) error {
	return fc.capture(fc.apiDriver.UpdateDraft(fc.wizardID, map[string]any{"type": propertyType}))
}

func (fc *FeatureContext) iFillInTheGeneralInformationWithTitle(title string) error {
	return fc.capture(fc.apiDriver.UpdateDraft(fc.wizardID, map[string]any{
		"title": title,
		"address": map[string]any{
			"street":     "12 Station Road",
			"postalCode": "75001",
			"city":       "Paris",
			"country":    "France",
		},
		"totalArea":   18,
		"rentAmount":  120,
		"description": "Closed garage box two minutes from the station.",
	}))
}

func (fc *FeatureContext) iAttachThePhoto(name string) error {
	return fc.capture(fc.apiDriver.AttachFile(fc.wizardID, "photos", name, pngHeader))
}

func (fc *FeatureContext) iFillInTheGarageDetails() error {
	return fc.capture(fc.apiDriver.UpdateDraft(fc.wizardID, map[string]any{
		"specificFields": map[string]any{
			"garageType":       "enclosed_box",
			"secureAccessType": "remote",
			"parkingSpots":     1,
			"height":           2.1,
			"interiorLighting": true,
			"automaticDoor":    true,
		},
	}))
}

func (fc *FeatureContext) iMoveToTheNextStep() error {
	return fc.capture(fc.apiDriver.NextStep(fc.wizardID))
}

func (fc *FeatureContext) iSubmitTheWizard() error {
	if err := fc.capture(fc.apiDriver.Submit(fc.wizardID)); err != nil {
		return err
	}
	if result, ok := fc.wizardView()["result"].(map[string]any); ok {
		if id, ok := result["primary_id"].(string); ok {
			fc.propertyID = id
		}
	}
	return nil
}

func (fc *FeatureContext) iCancelTheWizard() error {
	return fc.capture(fc.apiDriver.CancelWizard(fc.wizardID))
}

func (fc *FeatureContext) iReloadTheWizard() error {
	return fc.capture(fc.apiDriver.GetWizard(fc.wizardID))
}

func (fc *FeatureContext) theWizardShouldBeOnStep(stepID string) error {
	fc.require.Equal(stepID, fc.wizardView()["step_id"])
	return nil
}

func (fc *FeatureContext) theWizardShouldBe(status string) error {
	fc.require.Equal(status, fc.wizardView()["status"])
	return nil
}

func (fc *FeatureContext) theWizardShouldReportAnErrorFor(field string) error {
	errs, ok := fc.wizardView()["errors"].(map[string]any)
	fc.require.True(ok, "errors should be present")

	for _, section := range errs {
		messages, ok := section.(map[string]any)
		if !ok {
			continue
		}
		if _, found := messages[field]; found {
			return nil
		}
	}
	fc.require.Failf("missing field error", "no error for %s in %v", field, errs)
	return nil
}

// iOwnAGarageCreatedThroughTheWizard runs the whole property wizard and
// keeps the id of the created property.
func (fc *FeatureContext) iOwnAGarageCreatedThroughTheWizard() error {
	steps := []struct {
		run    func() error
		status int
	}{
		{func() error { return fc.iStartAWizard("property") }, http.StatusCreated},
		{func() error { return fc.iChooseThePropertyType("garage") }, http.StatusOK},
		{fc.iMoveToTheNextStep, http.StatusOK},
		{func() error { return fc.iFillInTheGeneralInformationWithTitle("Garage for maintenance") }, http.StatusOK},
		{func() error { return fc.iAttachThePhoto("garage.png") }, http.StatusCreated},
		{fc.iMoveToTheNextStep, http.StatusOK},
		{fc.iFillInTheGarageDetails, http.StatusOK},
		{fc.iMoveToTheNextStep, http.StatusOK},
		{fc.iSubmitTheWizard, http.StatusOK},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			return err
		}
		if err := fc.theResponseStatusCodeShouldBe(step.status); err != nil {
			return err
		}
	}

	fc.require.NotEmpty(fc.propertyID, "the submission should return the property id")
	return nil
}
