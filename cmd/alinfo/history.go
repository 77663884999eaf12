package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ngld/knossos/packages/libopenal/pkg/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Lists earlier probes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)
		limit, _ := cmd.Flags().GetInt("limit")
		clearHistory, _ := cmd.Flags().GetBool("clear")

		if err := openHistory(ctx); err != nil {
			return err
		}

		if clearHistory {
			return storage.ClearProbes(ctx)
		}

		probes, err := storage.ListProbes(ctx, limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if dumpOutput {
			dump(out, probes)
			return nil
		}

		for _, probe := range probes {
			fmt.Fprintf(out, "%s  %s  %-8s %s\n", probe.Time.Format("2006-01-02 15:04:05"), probe.ID, probe.Kind, probe.Library)
			switch probe.Kind {
			case storage.ProbeDevices:
				fmt.Fprintf(out, "    playback: %s\n", strings.Join(probe.Devices, ", "))
				fmt.Fprintf(out, "    capture:  %s\n", strings.Join(probe.Captures, ", "))
			case storage.ProbeVersion:
				fmt.Fprintf(out, "    %s (%s) %s\n", probe.Vendor, probe.Renderer, probe.Version)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of probes to list (0 lists all of them)")
	historyCmd.Flags().Bool("clear", false, "delete the history")
	rootCmd.AddCommand(historyCmd)
}
