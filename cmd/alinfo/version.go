package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/ngld/knossos/packages/libopenal"
	"github.com/ngld/knossos/packages/libopenal/pkg/sound3d"
	"github.com/ngld/knossos/packages/libopenal/pkg/storage"
)

var ErrVersionTooOld = eris.New("OpenAL implementation is too old")

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints vendor, renderer and version of the default device's implementation",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)
		device, _ := cmd.Flags().GetString("device")
		minVersion, _ := cmd.Flags().GetString("min")

		oal, err := loadOpenAL(ctx)
		if err != nil {
			return err
		}
		defer oal.Close()

		var ver libopenal.Version
		err = withDefaultContext(sound3d.New(oal), device, func(*sound3d.Context) error {
			var err error
			ver, err = libopenal.QueryVersion(oal.AL)
			return err
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if dumpOutput {
			dump(out, ver)
		} else {
			fmt.Fprintf(out, "Library:  %s\n", oal.Library())
			fmt.Fprintf(out, "Vendor:   %s\n", ver.Vendor)
			fmt.Fprintf(out, "Renderer: %s\n", ver.Renderer)
			fmt.Fprintf(out, "Version:  %s\n", ver.Raw)
		}

		recordProbe(ctx, &storage.Probe{
			Kind:     storage.ProbeVersion,
			Library:  oal.Library(),
			Default:  device,
			Vendor:   ver.Vendor,
			Renderer: ver.Renderer,
			Version:  ver.Raw,
		})

		if minVersion != "" {
			ok, err := ver.AtLeast(minVersion)
			if err != nil {
				return err
			}
			if !ok {
				return eris.Wrapf(ErrVersionTooOld, "%s doesn't satisfy %s", ver.Raw, minVersion)
			}
		}

		return nil
	},
}

func init() {
	versionCmd.Flags().StringP("device", "d", "", "device to query instead of the default one")
	versionCmd.Flags().String("min", "", "fail unless the version satisfies this constraint (e.g. \">= 1.21\")")
	rootCmd.AddCommand(versionCmd)
}
