package internal

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("prod logs JSON", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(&buf, "prod", "info").Info("started")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "started", entry["msg"])
		assert.Contains(t, entry, "time")
	})

	t.Run("development logs text", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(&buf, "development", "info").Info("started")
		assert.Contains(t, buf.String(), "msg=started")
	})

	t.Run("debug level enables debug records", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(&buf, "development", "debug").Debug("details")
		assert.Contains(t, buf.String(), "details")
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewLogger(&buf, "development", "verbose")
		log.Debug("hidden")
		log.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}
