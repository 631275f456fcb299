package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var ErrEmptyToken = errors.New("push token is empty")

// MessagingClient is the part of the firebase messaging client the sender uses.
type MessagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FirebaseSender delivers push notifications through Firebase Cloud Messaging.
type FirebaseSender struct {
	client MessagingClient
}

func NewFirebaseSender(client MessagingClient) *FirebaseSender {
	return &FirebaseSender{client: client}
}

// NewFirebaseMessaging builds a messaging client from a service account file.
func NewFirebaseMessaging(ctx context.Context, credentialsFile string) (*messaging.Client, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase messaging: %w", err)
	}

	return client, nil
}

func (s *FirebaseSender) Notify(ctx context.Context, pushToken, title, body string) error {
	if strings.TrimSpace(pushToken) == "" {
		return ErrEmptyToken
	}

	messageID, err := s.client.Send(ctx, &messaging.Message{
		Token: pushToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"title": title,
			"body":  body,
		},
	})
	if err != nil {
		return fmt.Errorf("send push notification: %w", err)
	}

	slog.DebugContext(ctx, "push notification sent", slog.String("message_id", messageID))

	return nil
}

// LogSender only logs notifications. Used when push delivery is disabled.
type LogSender struct{}

func (LogSender) Notify(ctx context.Context, pushToken, title, body string) error {
	if strings.TrimSpace(pushToken) == "" {
		return ErrEmptyToken
	}

	slog.InfoContext(ctx, "push notification suppressed",
		slog.String("title", title),
		slog.String("body", body))

	return nil
}
