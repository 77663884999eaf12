package main

import (
	"github.com/spf13/cobra"

	"github.com/ngld/knossos/packages/libopenal"
	"github.com/ngld/knossos/packages/libopenal/pkg/storage"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Lists the playback and capture devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)
		oal, err := loadOpenAL(ctx)
		if err != nil {
			return err
		}
		defer oal.Close()

		info, err := libopenal.GetDeviceInfo(ctx, oal.ALC)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if dumpOutput {
			dump(out, info)
		} else {
			printList(out, "Playback devices", info.Devices, info.DefaultDevice)
			printList(out, "Capture devices", info.Captures, info.DefaultCapture)
		}

		recordProbe(ctx, &storage.Probe{
			Kind:     storage.ProbeDevices,
			Library:  oal.Library(),
			Devices:  info.Devices,
			Captures: info.Captures,
			Default:  info.DefaultDevice,
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
