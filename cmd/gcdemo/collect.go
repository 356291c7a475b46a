package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var collectGarbage int

func init() {
	collectCmd.Flags().IntVar(&collectGarbage, "garbage", 64, "unreachable objects to allocate before forcing a collection")
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Allocate unreachable garbage, force a collection, and show the heap before and after",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		h, err := newDemoHeap(configPath)
		if err != nil {
			return err
		}

		survivor, err := h.AllocateObject(2)
		if err != nil {
			return fmt.Errorf("allocating the survivor: %w", err)
		}
		h.SetHeader(survivor, demoHeader(2))
		h.PushRoot(&survivor)

		if _, err := allocChain(h, collectGarbage); err != nil {
			return fmt.Errorf("allocating garbage: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "--- before collection ---")
		h.PrintState(out)

		h.Collect()

		fmt.Fprintln(out, "\n--- after collection ---")
		h.PrintState(out)

		if err := h.PopRoot(&survivor); err != nil {
			return err
		}
		return nil
	},
}
