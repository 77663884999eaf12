package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngld/knossos/packages/libopenal/pkg/storage"
)

func TestFailedCommandReleasesState(t *testing.T) {
	logger := log.Logger
	level := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})

	tmp := t.TempDir()
	statePath := filepath.Join(tmp, "state.db")
	logPath := filepath.Join(tmp, "alinfo.log")
	t.Setenv("ALINFO_STATE_PATH", statePath)
	t.Setenv("ALINFO_LOG_FILE", logPath)

	ctx := context.Background()
	code := run(ctx, []string{
		"play", filepath.Join(tmp, "missing.wav"),
		"--config", filepath.Join(tmp, "alinfo.toml"),
		"--library", filepath.Join(tmp, "libopenal-missing.so"),
		"--log-level", "error",
	})
	assert.Equal(t, 1, code)
	assert.False(t, historyOpen)

	// the history was opened before loading OpenAL failed; it must be closed again
	require.NoError(t, storage.Open(ctx, statePath))
	storage.Close(ctx)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "alinfo failed")
}

func TestConsoleWriterFormatsPlainValues(t *testing.T) {
	buf := new(bytes.Buffer)
	writer := getConsoleWriter(buf)
	writer.NoColor = true

	logger := zerolog.New(writer)
	logger.Info().Int("count", 3).Str("device", "front").Bool("default", true).Msg("hello")

	out := buf.String()
	assert.Contains(t, out, "count=3")
	assert.Contains(t, out, "device=front")
	assert.Contains(t, out, "default=true")
}
