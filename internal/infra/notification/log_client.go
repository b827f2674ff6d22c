package notification

import (
	"context"
	"log/slog"
	"sync"
)

var _ NotificationClient = (*LogClient)(nil)

// LogClient writes emails to the log instead of delivering them. It keeps
// the sent requests so local runs and tests can inspect them.
type LogClient struct {
	mu   sync.Mutex
	sent []EmailRequest
}

func NewLogClient() *LogClient {
	return &LogClient{}
}

func (c *LogClient) SendEmail(_ context.Context, request EmailRequest) error {
	if request.To == "" {
		return &NotificationError{Message: "missing recipient"}
	}

	c.mu.Lock()
	c.sent = append(c.sent, request)
	c.mu.Unlock()

	slog.Info("email",
		slog.String("to", request.To),
		slog.String("subject", request.Subject),
		slog.String("body", request.Body))
	return nil
}

func (c *LogClient) Sent() []EmailRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]EmailRequest, len(c.sent))
	copy(out, c.sent)
	return out
}
