package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"cheneygc/internal/gc"
)

var (
	statsFormat string
	statsAllocs int
)

func init() {
	statsCmd.Flags().StringVar(&statsFormat, "format", "text", "output format (text|json|msgpack)")
	statsCmd.Flags().IntVar(&statsAllocs, "allocs", 256, "allocations to run before snapshotting")
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Run a small workload and print the resulting statistics snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		h, err := newDemoHeap(configPath)
		if err != nil {
			return err
		}
		if _, err := allocChain(h, statsAllocs); err != nil {
			return fmt.Errorf("running workload: %w", err)
		}

		snap := h.Snapshot()
		out := cmd.OutOrStdout()
		switch statsFormat {
		case "text":
			h.PrintAllocationStatistics(out)
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(snap)
		case "msgpack":
			return gc.EncodeSnapshot(out, snap)
		default:
			return fmt.Errorf("unsupported format %q (must be text, json, or msgpack)", statsFormat)
		}
		return nil
	},
}
