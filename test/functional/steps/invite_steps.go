package steps

import (
	"time"
)

const _dateLayout = "2006-01-02"

func (fc *FeatureContext) invite(firstName, lastName, email string, start, end time.Time) error {
	return fc.capture(fc.apiDriver.CreateInvite(map[string]any{
		"propertyId":     fc.propertyID,
		"firstName":      firstName,
		"lastName":       lastName,
		"email":          email,
		"phone":          "+33612345678",
		"leaseStartDate": start.Format(_dateLayout),
		"leaseEndDate":   end.Format(_dateLayout),
		"rentAmount":     120,
		"deposit":        240,
	}))
}

func (fc *FeatureContext) iInviteToTheProperty(firstName, lastName, email string) error {
	start := time.Now().UTC().AddDate(0, 0, 1)
	return fc.invite(firstName, lastName, email, start, start.AddDate(0, 6, 0))
}

func (fc *FeatureContext) iInviteForDays(firstName, lastName, email string, days int) error {
	start := time.Now().UTC().AddDate(0, 0, 1)
	return fc.invite(firstName, lastName, email, start, start.AddDate(0, 0, days))
}

func (fc *FeatureContext) iVerifyTheInvite(email, token string) error {
	return fc.capture(fc.apiDriver.VerifyInvite(email, token))
}

func (fc *FeatureContext) theInviteShouldBe(status string) error {
	fc.require.Equal(status, fc.responseData["status"])
	fc.require.Equal(true, fc.responseData["emailSent"])
	return nil
}
