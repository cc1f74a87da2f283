package pubsub

import (
	"context"
	"log/slog"
	"testing"

	"knect/config"
	"knect/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewPublisher(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		check   func(t *testing.T, publisher any)
	}{
		{
			name: "unconfigured discards changes",
			cfg:  nil,
			check: func(t *testing.T, publisher any) {
				require.IsType(t, &discardPublisher{}, publisher)
				assert.NoError(t, publisher.(*discardPublisher).PublishConnectionChange(context.Background(), testChange()))
			},
		},
		{
			name: "local forwards over HTTP",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"},
			check: func(t *testing.T, publisher any) {
				assert.IsType(t, &localHTTPPublisher{}, publisher)
			},
		},
		{
			name:    "local needs an endpoint",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "localEndpoint is required",
		},
		{
			name:    "google needs a topic",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "knect"},
			wantErr: "projectId and topicId are required",
		},
		{
			name:    "unknown provider",
			cfg:     &config.PubSubConfig{Provider: "kafka"},
			wantErr: `unknown provider "kafka"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(context.Background(), tt.cfg, logger)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			tt.check(t, publisher)
		})
	}
}

func TestNewEventPublisher_ClosesOnStop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)
	require.NotNil(t, publisher)

	lc.RequireStart().RequireStop()
}
