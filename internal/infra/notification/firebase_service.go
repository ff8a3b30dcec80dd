// Package notification delivers new-order alerts to restaurant devices through Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"platter/config"
	"platter/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// New builds the notification service from config. Without Firebase
// credentials, alerts are logged instead of sent.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase not configured, restaurant alerts will only be logged")

		return &logOnlyService{logger: logger}, nil
	}

	return NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendTopicNotification sends a push notification to every device subscribed to topic
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// IsRetryable reports whether a send failure is worth retrying.
func IsRetryable(err error) bool {
	return messaging.IsUnavailable(err) ||
		messaging.IsInternal(err) ||
		messaging.IsQuotaExceeded(err)
}

type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "Restaurant alert (not sent)",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}
