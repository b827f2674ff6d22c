package steps

func (fc *FeatureContext) iGetTheCreatedProperty() error {
	fc.require.NotEmpty(fc.propertyID)
	return fc.capture(fc.apiDriver.GetProperty(fc.propertyID))
}

func (fc *FeatureContext) thePropertyShouldHaveTitle(title string) error {
	fc.require.Equal(title, fc.responseData["title"])
	fc.require.Equal("garage", fc.responseData["type"])

	photos, ok := fc.responseData["photos"].([]any)
	fc.require.True(ok, "photos should be a list")
	fc.require.Len(photos, 1)
	return nil
}
