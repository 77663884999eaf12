package main

import (
	"context"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ngld/knossos/packages/libopenal"
	"github.com/ngld/knossos/packages/libopenal/pkg/api"
	"github.com/ngld/knossos/packages/libopenal/pkg/config"
	"github.com/ngld/knossos/packages/libopenal/pkg/sound3d"
	"github.com/ngld/knossos/packages/libopenal/pkg/storage"
)

var (
	cfg        *config.Config
	closeLog   = func() {}
	configPath string
	dumpOutput bool
	noHistory  bool

	historyOpen bool
)

var rootCmd = &cobra.Command{
	Use:           "alinfo",
	Short:         "Inspects the OpenAL implementation installed on this system",
	Version:       api.VersionString(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("library") {
			cfg.Library.Path, _ = flags.GetString("library")
		}
		if flags.Changed("log-level") {
			cfg.Log.Level, _ = flags.GetString("log-level")
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		closeLog, err = setupLogging(cfg)
		if err != nil {
			return err
		}

		log.Debug().Str("state", cfg.State.Path).Msg("Finished parsing configuration")
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultPath(), "path to the config file")
	flags.String("library", "", "load this OpenAL library instead of searching for one")
	flags.String("log-level", "info", "minimum log level")
	flags.BoolVar(&dumpOutput, "dump", false, "print the raw results instead of a summary")
	flags.BoolVar(&noHistory, "no-history", false, "don't record this probe in the history")
}

// cleanup closes the history and the log file. cobra skips post-run hooks when a command
// fails so this runs from main instead.
func cleanup(ctx context.Context) {
	if historyOpen {
		storage.Close(ctx)
		historyOpen = false
	}

	closeLog()
	closeLog = func() {}
}

// commandContext returns the command's context with the configured logger attached.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return log.Logger.WithContext(ctx)
}

func loadOpenAL(ctx context.Context) (*libopenal.OpenAL, error) {
	oal, err := libopenal.Load(ctx, libopenal.Options{
		LibraryPath:  cfg.Library.Path,
		PreferSystem: cfg.Library.PreferSystem,
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Str("library", oal.Library()).Msg("Loaded OpenAL")
	return oal, nil
}

// withDefaultContext opens deviceName and runs fn while a context on it is current.
func withDefaultContext(sys *sound3d.System, deviceName string, fn func(*sound3d.Context) error) error {
	dev, err := sys.OpenDevice(deviceName)
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close device")
		}
	}()

	alctx, err := sys.CreateContext(dev, nil)
	if err != nil {
		return err
	}
	defer alctx.Destroy()

	if err := alctx.MakeCurrent(); err != nil {
		return err
	}
	defer func() {
		if err := alctx.Release(); err != nil {
			log.Warn().Err(err).Msg("Failed to release context")
		}
	}()

	return fn(alctx)
}

func openHistory(ctx context.Context) error {
	if historyOpen {
		return nil
	}

	if err := storage.Open(ctx, cfg.State.Path); err != nil {
		return err
	}
	historyOpen = true
	return nil
}

func recordProbe(ctx context.Context, probe *storage.Probe) {
	if noHistory {
		return
	}

	if err := openHistory(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to open history, this probe won't be recorded")
		return
	}

	if err := storage.SaveProbe(ctx, probe); err != nil {
		log.Warn().Err(err).Msg("Failed to record probe")
		return
	}

	log.Debug().Str("probe", probe.ID).Msg("Recorded probe")
}

func dump(out io.Writer, value interface{}) {
	spew.Fdump(out, value)
}

func printList(out io.Writer, title string, items []string, def string) {
	fmt.Fprintf(out, "%s:\n", title)
	if len(items) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}

	for _, item := range items {
		marker := " "
		if item == def {
			marker = "*"
		}
		fmt.Fprintf(out, " %s %s\n", marker, item)
	}
}

func requireArgs(args []string, count int) error {
	if len(args) != count {
		return eris.Errorf("expected %d arguments but got %d", count, len(args))
	}
	return nil
}
