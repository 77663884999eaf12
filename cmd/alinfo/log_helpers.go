package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ngld/knossos/packages/libopenal/pkg/config"
)

// length of the IDs nanoid.New() generates
const probeIDLength = 21

func getConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	writer := zerolog.ConsoleWriter{Out: out}
	writer.TimeFormat = "02.01.2006 15:04:05 MST"
	writer.PartsOrder = []string{
		zerolog.TimestampFieldName,
		zerolog.LevelFieldName,
		zerolog.CallerFieldName,
		zerolog.MessageFieldName,
	}

	writer.FormatFieldValue = func(value interface{}) string {
		if value == nil {
			return "           "
		}

		str, ok := value.(string)
		if !ok {
			return fmt.Sprint(value)
		}

		if len(str) == probeIDLength && !strings.ContainsAny(str, " /.") {
			// probe IDs in cyan
			return fmt.Sprintf("\x1b[%dm%s\x1b[0m", 36, str)
		} else if strings.Contains(str, "\\n") && strings.Contains(str, "\\t") {
			// unquote values that contain line breaks and tabs because they're most likely stack traces
			if unquoted, err := strconv.Unquote(str); err == nil {
				return unquoted
			}
		}

		return str
	}

	writer.FormatCaller = func(caller interface{}) string {
		callerStr, ok := caller.(string)
		if !ok {
			return ""
		}

		parts := strings.SplitN(callerStr, ":", 3)
		if len(parts) == 1 {
			return parts[0]
		}

		if len(parts) == 3 {
			parts[0] = parts[0] + ":" + parts[1]
			parts[1] = parts[2]
		}

		wd, err := os.Getwd()
		if err != nil {
			return callerStr
		}

		rel, err := filepath.Rel(wd, parts[0])
		if err != nil {
			return callerStr
		}

		return fmt.Sprintf("\x1b[%dm%s:%s\x1b[0m \x1b[36m>\x1b[0m", 1, filepath.ToSlash(rel), parts[1])
	}

	return writer
}

// setupLogging configures the global logger. The returned function closes the log file
// if one was opened.
func setupLogging(cfg *config.Config) (func(), error) {
	if cfg.Log.JSON {
		log.Logger = log.Output(os.Stderr)
		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			return eris.ToJSON(err, true)
		}
	} else {
		log.Logger = log.Output(getConsoleWriter(os.Stderr))
		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			return eris.ToString(err, true)
		}
	}

	zerolog.SetGlobalLevel(cfg.LogLevel())

	cleanup := func() {}
	if cfg.Log.File != "" {
		f, err := os.Create(cfg.Log.File)
		if err != nil {
			return cleanup, eris.Wrap(err, "failed to open log file")
		}

		var logFile io.Writer = f
		if !cfg.Log.JSON {
			writer := getConsoleWriter(f)
			writer.NoColor = true
			logFile = writer
		}

		log.Logger = log.Output(logFile)
		cleanup = func() {
			f.Close()
		}
	}

	log.Logger = log.Logger.With().Caller().Stack().Logger()
	return cleanup, nil
}
