package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "production", "info")
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Str("path", "books.json").Msg("Initialized")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "books.json", line["path"])
	assert.Equal(t, "Initialized", line["message"])
}

func TestNew_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "development", "debug")
	require.NoError(t, err)

	l.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.NotContains(t, buf.String(), "{")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "production", "loud")
	assert.Error(t, err)
}

func TestNew_LeavesGlobalsAlone(t *testing.T) {
	level := zerolog.GlobalLevel()
	global := log.Logger

	l, err := New(&bytes.Buffer{}, "production", "error")
	require.NoError(t, err)

	assert.Equal(t, zerolog.ErrorLevel, l.GetLevel())
	assert.Equal(t, level, zerolog.GlobalLevel())
	assert.Equal(t, global, log.Logger)
}

func TestInit_InstallsGlobalLogger(t *testing.T) {
	level := zerolog.GlobalLevel()
	global := log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = global
	})

	l, err := Init("production", "warn")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	assert.Equal(t, l, log.Logger)
}
