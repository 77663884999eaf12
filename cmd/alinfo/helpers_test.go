package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestPrintList(t *testing.T) {
	buf := new(bytes.Buffer)
	printList(buf, "Playback devices", []string{"Built-in Audio", "USB Headset"}, "USB Headset")
	assert.Equal(t, "Playback devices:\n   Built-in Audio\n * USB Headset\n", buf.String())

	buf.Reset()
	printList(buf, "Capture devices", nil, "")
	assert.Equal(t, "Capture devices:\n  (none)\n", buf.String())
}

func TestSplitExtensions(t *testing.T) {
	assert.Equal(t, []string{"AL_EXT_FLOAT32", "AL_EXT_MCFORMATS", "AL_SOFT_loop_points"},
		splitExtensions(" AL_SOFT_loop_points AL_EXT_MCFORMATS  AL_EXT_FLOAT32 "))
	assert.Empty(t, splitExtensions(""))
}

func TestRequireArgs(t *testing.T) {
	assert.NoError(t, requireArgs([]string{"a.wav"}, 1))
	assert.Error(t, requireArgs(nil, 1))
}

func TestConsoleWriterUnquotesStacks(t *testing.T) {
	buf := new(bytes.Buffer)
	writer := getConsoleWriter(buf)
	writer.NoColor = true

	logger := zerolog.New(writer)
	logger.Info().Str("stack", "first\n\tsecond").Msg("hello")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.True(t, strings.Contains(out, "first\n\tsecond"), out)
}
