package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mailersend/mailersend-go"
)

const _maxAttempts = 3

var _ NotificationClient = (*MailerSendClient)(nil)

type MailerSendClient struct {
	client    *mailersend.Mailersend
	fromEmail string
	fromName  string
	backoff   time.Duration
}

type MailerSendConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

func NewMailerSendClient(config MailerSendConfig) *MailerSendClient {
	return &MailerSendClient{
		client:    mailersend.NewMailersend(config.APIKey),
		fromEmail: config.FromEmail,
		fromName:  config.FromName,
		backoff:   time.Second,
	}
}

func (c *MailerSendClient) SendEmail(ctx context.Context, request EmailRequest) error {
	if request.To == "" {
		return &NotificationError{Message: "missing recipient"}
	}

	message := c.client.Email.NewMessage()
	message.SetFrom(mailersend.From{
		Email: c.fromEmail,
		Name:  c.fromName,
	})
	message.SetRecipients([]mailersend.Recipient{
		{
			Email: request.To,
			Name:  request.ToName,
		},
	})
	message.SetSubject(request.Subject)
	message.SetText(request.Body)
	if request.HTML != "" {
		message.SetHTML(request.HTML)
	}

	return c.sendWithRetry(ctx, message)
}

func (c *MailerSendClient) sendWithRetry(ctx context.Context, message *mailersend.Message) error {
	var lastErr error

	for attempt := 1; attempt <= _maxAttempts; attempt++ {
		_, err := c.client.Email.Send(ctx, message)
		if err == nil {
			return nil
		}

		lastErr = &NotificationError{
			Message: fmt.Sprintf("MailerSend API error (attempt %d/%d)", attempt, _maxAttempts),
			Err:     err,
		}
		slog.Warn("sending email", slog.Int("attempt", attempt), slog.String("error", err.Error()))

		if attempt == _maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return &NotificationError{Message: "sending email cancelled", Err: ctx.Err()}
		case <-time.After(time.Duration(attempt) * c.backoff):
		}
	}

	return lastErr
}
