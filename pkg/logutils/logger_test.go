package logutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type markHook struct{}

func (markHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Bool("hooked", true)
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasklist.log")

	logger, closer, err := New("info", path, markHook{})
	require.NoError(t, err)

	logger.Debug().Msg("filtered")
	logger.Info().Str("op", "add").Msg("kept")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "add", entry["op"])
	assert.Equal(t, true, entry["hooked"])
	assert.Contains(t, entry, "time")
}

func TestNew_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklist.log")

	for _, msg := range []string{"first", "second"} {
		logger, closer, err := New("info", path)
		require.NoError(t, err)
		logger.Info().Msg(msg)
		closer()
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	assert.NotNil(t, closer)
}
