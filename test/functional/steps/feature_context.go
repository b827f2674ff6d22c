package steps

import (
	"context"
	"io"
	"net/http"

	"easyrent-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	apiDriver     *driver.APIDriver
	response      *http.Response
	responseData  map[string]any
	wizardID      string
	propertyID    string
	maintenanceID string
	require       *require.Assertions
	t             godog.TestingT
}

func NewFeatureContext(baseURL string) *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(baseURL),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Given(`^I am the landlord "([^"]*)"$`, fc.iAmTheLandlord)
	ctx.Given(`^I am not signed in$`, fc.iAmNotSignedIn)

	// Wizard steps
	ctx.When(`^I start a "([^"]*)" wizard$`, fc.iStartAWizard)
	ctx.When(`^I choose the property type "([^"]*)"$`, fc.iChooseThePropertyType)
	ctx.When(`^I fill in the general information with title "([^"]*)"$`, fc.iFillInTheGeneralInformationWithTitle)
	ctx.When(`^I attach the photo "([^"]*)"$`, fc.iAttachThePhoto)
	ctx.When(`^I fill in the garage details$`, fc.iFillInTheGarageDetails)
	ctx.When(`^I move to the next step$`, fc.iMoveToTheNextStep)
	ctx.When(`^I submit the wizard$`, fc.iSubmitTheWizard)
	ctx.When(`^I cancel the wizard$`, fc.iCancelTheWizard)
	ctx.When(`^I reload the wizard$`, fc.iReloadTheWizard)
	ctx.Then(`^the wizard should be on step "([^"]*)"$`, fc.theWizardShouldBeOnStep)
	ctx.Then(`^the wizard should be "([^"]*)"$`, fc.theWizardShouldBe)
	ctx.Then(`^the wizard should report an error for "([^"]*)"$`, fc.theWizardShouldReportAnErrorFor)

	// Property steps
	ctx.Given(`^I own a garage created through the wizard$`, fc.iOwnAGarageCreatedThroughTheWizard)
	ctx.When(`^I get the created property$`, fc.iGetTheCreatedProperty)
	ctx.Then(`^the property should have title "([^"]*)"$`, fc.thePropertyShouldHaveTitle)

	// Maintenance steps
	ctx.When(`^I open a "([^"]*)" priority maintenance request "([^"]*)"$`, fc.iOpenAMaintenanceRequest)
	ctx.When(`^I complete the maintenance request with an actual cost of ([\d.]+)$`, fc.iCompleteTheMaintenanceRequest)
	ctx.When(`^I list the maintenance requests of the property$`, fc.iListTheMaintenanceRequestsOfTheProperty)
	ctx.Then(`^the maintenance request should be "([^"]*)"$`, fc.theMaintenanceRequestShouldBe)
	ctx.Then(`^the maintenance request should have a completion date$`, fc.theMaintenanceRequestShouldHaveACompletionDate)
	ctx.Then(`^the list should contain (\d+) maintenance requests?$`, fc.theListShouldContainMaintenanceRequests)

	// Invite steps
	ctx.When(`^I invite "([^"]*)" "([^"]*)" with email "([^"]*)" to the property$`, fc.iInviteToTheProperty)
	ctx.When(`^I invite "([^"]*)" "([^"]*)" with email "([^"]*)" for (\d+) days$`, fc.iInviteForDays)
	ctx.When(`^I verify the invite of "([^"]*)" with token "([^"]*)"$`, fc.iVerifyTheInvite)
	ctx.Then(`^the invite should be "([^"]*)"$`, fc.theInviteShouldBe)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.apiDriver.Anonymous()
	fc.response = nil
	fc.responseData = nil
	fc.wizardID = ""
	fc.propertyID = ""
	fc.maintenanceID = ""
}

// capture keeps the response and its decoded JSON body for the assertion
// steps that follow.
func (fc *FeatureContext) capture(response *http.Response, err error) error {
	if err != nil {
		return err
	}
	defer response.Body.Close()

	fc.response = response
	fc.responseData = nil

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil
	}
	fc.responseData = data
	return nil
}

// wizardView returns the wizard state of the last response. Error replies
// carry it in their details.
func (fc *FeatureContext) wizardView() map[string]any {
	if details, ok := fc.responseData["details"].(map[string]any); ok {
		return details
	}
	return fc.responseData
}
