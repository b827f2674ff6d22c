package steps

import (
	"github.com/google/uuid"
)

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.NotNil(fc.response, "no request was sent")
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code: %v", fc.responseData)
	return nil
}

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	return fc.capture(fc.apiDriver.GetHealthz())
}

// iAmTheLandlord signs in as a fresh user so scenarios never share data.
func (fc *FeatureContext) iAmTheLandlord(email string) error {
	fc.apiDriver.ActAs(uuid.NewString(), email)
	return nil
}

func (fc *FeatureContext) iAmNotSignedIn() error {
	fc.apiDriver.Anonymous()
	return nil
}
