package notification

import (
	"context"
	"log/slog"

	"knect/config"
	"knect/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit for one multicast request.
const maxMulticastTokens = 500

type firebaseService struct {
	client *messaging.Client
}

// logOnlyService stands in for FCM when firebase is not configured.
type logOnlyService struct {
	logger *slog.Logger
}

// New returns the FCM sender when firebase is configured and a logging stand-in otherwise.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Info("Firebase not configured, push notifications are logged only")

		return &logOnlyService{logger: logger}, nil
	}

	return NewFirebaseService(ctx, cfg.Firebase)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendBatchNotification sends push notifications to at most 500 device tokens.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	if len(tokens) == 0 {
		return 0, 0, nil, nil
	}
	if len(tokens) > maxMulticastTokens {
		return 0, 0, nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxMulticastTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "failed to send multicast notification")
	}

	invalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return response.SuccessCount, response.FailureCount, invalidTokens, nil
}

func (s *logOnlyService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, _ map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	s.logger.InfoContext(ctx, "Push notification skipped",
		slog.Int("token_count", len(tokens)),
		slog.String("title", title),
		slog.String("body", body),
	)

	return len(tokens), 0, nil, nil
}
