package usecases

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"easyrent-server/internal/infra/notification"
	onboardingDomain "easyrent-server/internal/onboarding/domain"
	propertyDomain "easyrent-server/internal/property/domain"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	InviteSubject     = "Welcome to EasyRent - Complete Your Tenant Profile"
	CompletionSubject = "Tenant onboarding completed"
)

var inviteTemplate = template.Must(template.New("invite").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #1f2937;">
  <h1>Welcome to EasyRent, {{.FirstName}}!</h1>
  <p>{{.Landlord}} has invited you to rent the property at:</p>
  <p><strong>{{.Address}}</strong></p>
  <ul>
    <li>Lease: {{.Start}} to {{.End}}</li>
    <li>Monthly rent: {{.Rent}}</li>
    <li>Deposit: {{.Deposit}}</li>
  </ul>
  <p><a href="{{.Link}}" style="background: #2563eb; color: #ffffff; padding: 12px 20px; text-decoration: none;">Complete Your Profile</a></p>
  <p>This link expires in 7 days.</p>
</body>
</html>`))

var completionTemplate = template.Must(template.New("completion").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #1f2937;">
  <p>Hello {{.Landlord}},</p>
  <p>{{.Tenant}} ({{.Email}}) has completed the onboarding profile.</p>
  {{if .Guarantor}}<p>A guarantor was provided.</p>{{else}}<p>No guarantor was provided.</p>{{end}}
</body>
</html>`))

// Mailer renders the onboarding emails and hands them to the notification
// client.
type Mailer struct {
	client        notification.NotificationClient
	publicBaseURL string
	printer       *message.Printer
	unit          currency.Unit
}

func NewMailer(client notification.NotificationClient, publicBaseURL string) *Mailer {
	return &Mailer{
		client:        client,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		printer:       message.NewPrinter(language.English),
		unit:          currency.EUR,
	}
}

// InviteLink is the page the tenant opens to start onboarding.
func (m *Mailer) InviteLink(invite onboardingDomain.Invite) string {
	query := url.Values{}
	query.Set("email", invite.Email)
	query.Set("token", invite.Token)
	return m.publicBaseURL + "/onboarding?" + query.Encode()
}

func (m *Mailer) Money(amount float64) string {
	return m.printer.Sprint(currency.Symbol(m.unit.Amount(amount)))
}

func (m *Mailer) SendInvite(ctx context.Context, invite onboardingDomain.Invite, property propertyDomain.Property) error {
	link := m.InviteLink(invite)

	var html bytes.Buffer
	err := inviteTemplate.Execute(&html, map[string]any{
		"FirstName": invite.FirstName,
		"Landlord":  landlordName(invite),
		"Address":   formatAddress(property.Address),
		"Start":     invite.Term.Start.String(),
		"End":       invite.Term.End.String(),
		"Rent":      m.Money(invite.RentAmount),
		"Deposit":   m.Money(invite.DepositAmount),
		"Link":      link,
	})
	if err != nil {
		return fmt.Errorf("rendering invite email: %w", err)
	}

	return m.client.SendEmail(ctx, notification.EmailRequest{
		To:      invite.Email,
		ToName:  invite.FullName(),
		Subject: InviteSubject,
		Body: fmt.Sprintf("Welcome to EasyRent, %s! Complete your tenant profile for %s: %s (the link expires in 7 days)",
			invite.FirstName, formatAddress(property.Address), link),
		HTML: html.String(),
	})
}

func (m *Mailer) SendCompletion(ctx context.Context, invite onboardingDomain.Invite, hasGuarantor bool) error {
	var html bytes.Buffer
	err := completionTemplate.Execute(&html, map[string]any{
		"Landlord":  landlordName(invite),
		"Tenant":    invite.FullName(),
		"Email":     invite.Email,
		"Guarantor": hasGuarantor,
	})
	if err != nil {
		return fmt.Errorf("rendering completion email: %w", err)
	}

	return m.client.SendEmail(ctx, notification.EmailRequest{
		To:      invite.LandlordEmail,
		ToName:  invite.LandlordName,
		Subject: CompletionSubject,
		Body:    fmt.Sprintf("%s (%s) has completed the onboarding profile.", invite.FullName(), invite.Email),
		HTML:    html.String(),
	})
}

func landlordName(invite onboardingDomain.Invite) string {
	if invite.LandlordName != "" {
		return invite.LandlordName
	}
	return "Your landlord"
}

func formatAddress(a propertyDomain.Address) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{a.Street, strings.TrimSpace(a.PostalCode + " " + a.City), a.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
