package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	allocCount  int
	allocFields int
)

func init() {
	allocCmd.Flags().IntVar(&allocCount, "count", 100, "number of objects to allocate")
	allocCmd.Flags().IntVar(&allocFields, "fields", 1, "field count per object")
}

var allocCmd = &cobra.Command{
	Use:   "alloc",
	Short: "Allocate a run of objects and print the resulting statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		h, err := newDemoHeap(configPath)
		if err != nil {
			return err
		}

		for i := 0; i < allocCount; i++ {
			p, err := h.AllocateObject(allocFields)
			if err != nil {
				return fmt.Errorf("allocation %d/%d: %w", i+1, allocCount, err)
			}
			h.SetHeader(p, demoHeader(allocFields))
			for f := 0; f < allocFields; f++ {
				h.SetField(p, f, 0)
			}
		}

		h.PrintAllocationStatistics(cmd.OutOrStdout())
		return nil
	},
}
