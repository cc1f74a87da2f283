package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"knect/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := Build(&buf, config.Log{Level: "warn"})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "connector_id", "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "abc", entry["connector_id"])
}

func TestBuild_Pretty(t *testing.T) {
	var buf bytes.Buffer

	logger, err := Build(&buf, config.Log{Pretty: true, Level: "debug"})
	require.NoError(t, err)

	logger.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestBuild_UnknownLevel(t *testing.T) {
	_, err := Build(&bytes.Buffer{}, config.Log{Level: "loud"})
	assert.ErrorContains(t, err, "unknown log level")
}
