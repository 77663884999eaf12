package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ngld/knossos/packages/libopenal"
	"github.com/ngld/knossos/packages/libopenal/pkg/sound3d"
)

type extensionInfo struct {
	AL  []string
	ALC []string
	EAX bool
}

var extensionsCmd = &cobra.Command{
	Use:   "extensions",
	Short: "Lists the AL and ALC extensions of the default device",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)
		device, _ := cmd.Flags().GetString("device")

		oal, err := loadOpenAL(ctx)
		if err != nil {
			return err
		}
		defer oal.Close()

		var info extensionInfo
		err = withDefaultContext(sound3d.New(oal), device, func(alctx *sound3d.Context) error {
			info.AL = splitExtensions(oal.AL.GetString(libopenal.Extensions))
			info.ALC = splitExtensions(oal.ALC.GetString(alctx.Device().Handle(), libopenal.ALCExtensions))
			info.EAX = oal.EAX.Available()
			return oal.AL.Check("failed to query extensions")
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if dumpOutput {
			dump(out, info)
			return nil
		}

		printList(out, "AL extensions", info.AL, "")
		printList(out, "ALC extensions", info.ALC, "")
		fmt.Fprintf(out, "EAX 2.0: %t\n", info.EAX)
		return nil
	},
}

func splitExtensions(list string) []string {
	names := strings.Fields(list)
	sort.Strings(names)
	return names
}

func init() {
	extensionsCmd.Flags().StringP("device", "d", "", "device to query instead of the default one")
	rootCmd.AddCommand(extensionsCmd)
}
