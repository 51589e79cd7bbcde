package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/startrek-travel/internal/logging"
)

func TestNew_jsonHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, "warn", "json")

	log.Info("dropped")
	log.Warn("kept", "form", "signup")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "signup", entry["form"])
}

func TestNew_unknownLevelMeansInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, "loud", "json")

	log.Debug("dropped")
	assert.Zero(t, buf.Len())
	log.Info("kept")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
}

func TestNew_textUsesTint(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, "info", "text")

	log.Info("server starting", "addr", ":8080")

	out := buf.String()
	assert.Contains(t, out, "server starting")
	assert.Contains(t, out, "addr")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "text format is not JSON")
}
