package notification

import (
	"context"
)

//go:generate mockgen -source=notification_client.go -destination=../../../test/unit/doubles/infra/notification/notification_client_mock.go -package=notification -mock_names=NotificationClient=MockNotificationClient

type NotificationClient interface {
	SendEmail(ctx context.Context, request EmailRequest) error
}

// EmailRequest carries a plain text body and an optional HTML alternative.
type EmailRequest struct {
	To      string
	ToName  string
	Subject string
	Body    string
	HTML    string
}

type NotificationError struct {
	Message string
	Err     error
}

func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
