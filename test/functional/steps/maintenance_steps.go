package steps

func (fc *FeatureContext) iOpenAMaintenanceRequest(priority, description string) error {
	err := fc.capture(fc.apiDriver.CreateMaintenanceRequest(map[string]any{
		"property_id": fc.propertyID,
		"description": description,
		"priority":    priority,
	}))
	if err != nil {
		return err
	}
	if id, ok := fc.responseData["id"].(string); ok {
		fc.maintenanceID = id
	}
	return nil
}

func (fc *FeatureContext) iCompleteTheMaintenanceRequest(actualCost float64) error {
	return fc.capture(fc.apiDriver.CompleteMaintenanceRequest(fc.maintenanceID, actualCost))
}

func (fc *FeatureContext) iListTheMaintenanceRequestsOfTheProperty() error {
	return fc.capture(fc.apiDriver.ListPropertyMaintenanceRequests(fc.propertyID))
}

func (fc *FeatureContext) theMaintenanceRequestShouldBe(status string) error {
	fc.require.Equal(status, fc.responseData["status"])
	return nil
}

func (fc *FeatureContext) theMaintenanceRequestShouldHaveACompletionDate() error {
	fc.require.NotEmpty(fc.responseData["completion_date"])
	return nil
}

func (fc *FeatureContext) theListShouldContainMaintenanceRequests(count int) error {
	data, ok := fc.responseData["data"].([]any)
	fc.require.True(ok, "data should be a list")
	fc.require.Len(data, count)
	return nil
}
