package main

import (
	"context"
	"testing"

	"knect/config"
	"knect/internal/client/protocol"
	domainerrors "knect/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "domain error",
			err:  errors.WithStack(domainerrors.ErrSelfScan),
			want: domainerrors.ErrSelfScan.Message(),
		},
		{
			name: "domain error with details",
			err:  domainerrors.ErrValidationFailed.WithDetails("connection id must be a UUID"),
			want: domainerrors.ErrValidationFailed.Message() + " (connection id must be a UUID)",
		},
		{
			name: "busy scanner",
			err:  protocol.ErrBusy,
			want: protocol.Message(protocol.ErrBusy),
		},
		{
			name: "plain error",
			err:  errors.New("failed to read image"),
			want: "failed to read image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.err))
		})
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	err := run(context.Background(), "teleport", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "teleport")
}

func TestCommands_Unique(t *testing.T) {
	seen := map[string]bool{}
	for _, cmd := range commands() {
		assert.False(t, seen[cmd.name], cmd.name)
		seen[cmd.name] = true
		assert.NotNil(t, cmd.run, cmd.name)
	}
}

func TestResolveConfig(t *testing.T) {
	loaded := &config.ClientConfig{BaseURL: "https://knect.example"}

	cfg, err := resolveConfig(loaded, nil)
	require.NoError(t, err)
	assert.Same(t, loaded, cfg)

	cfg, err = resolveConfig(nil, errors.Wrap(config.ErrConfigNotFound, "knectctl.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultClientConfig().BaseURL, cfg.BaseURL)

	_, err = resolveConfig(nil, errors.New("yaml: line 1: did not find expected node content"))
	require.ErrorContains(t, err, "load knectctl config")
}
