package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ngld/knossos/packages/libopenal/pkg/sound3d"
	"github.com/ngld/knossos/packages/libopenal/pkg/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <wav file>",
	Short: "Plays a WAV file to test a device",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireArgs(args, 1); err != nil {
			return err
		}

		ctx := commandContext(cmd)
		flags := cmd.Flags()
		device, _ := flags.GetString("device")
		gain, _ := flags.GetFloat32("gain")
		environment, _ := flags.GetInt("eax-environment")

		if !flags.Changed("device") && !noHistory {
			if err := openHistory(ctx); err == nil {
				settings, err := storage.GetSettings(ctx)
				if err == nil && settings.LastDevice != "" {
					device = settings.LastDevice
					log.Debug().Str("device", device).Msg("Using the last device")
				}
			}
		}

		oal, err := loadOpenAL(ctx)
		if err != nil {
			return err
		}
		defer oal.Close()

		sys := sound3d.New(oal)
		err = withDefaultContext(sys, device, func(alctx *sound3d.Context) error {
			src, err := sys.LoadSource(args[0])
			if err != nil {
				return err
			}
			defer src.Delete()

			sys.Listener().SetPosition(sound3d.Vec3f{})
			src.SetRelative(true)
			src.SetGain(gain)

			if environment >= 0 {
				if err := oal.EAX.SetEnvironment(uint32(environment)); err != nil {
					log.Warn().Err(err).Msg("Failed to apply EAX environment")
				}
			}

			src.Play()
			if err := sys.CheckError(nil, "failed to start playback"); err != nil {
				return err
			}

			log.Info().Str("file", args[0]).Msg("Playing")
			if err := waitForPlayback(ctx, src, 50*time.Millisecond); err != nil {
				return err
			}

			return sys.CheckError(alctx.Device(), "playback failed")
		})
		if err != nil {
			return err
		}

		if device != "" && !noHistory {
			if err := openHistory(ctx); err == nil {
				if err := storage.SaveSettings(ctx, &storage.Settings{LastDevice: device}); err != nil {
					log.Warn().Err(err).Msg("Failed to remember device")
				}
			}
		}
		return nil
	},
}

// waitForPlayback blocks until src stops playing. If ctx ends first the source is
// stopped and ctx's error returned.
func waitForPlayback(ctx context.Context, src *sound3d.Source, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for src.Playing() {
		select {
		case <-ctx.Done():
			src.Stop()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return nil
}

func init() {
	playCmd.Flags().StringP("device", "d", "", "play on this device instead of the default one")
	playCmd.Flags().Float32("gain", 1, "playback volume")
	playCmd.Flags().Int("eax-environment", -1, "EAX 2.0 environment preset to apply")
	rootCmd.AddCommand(playCmd)
}
