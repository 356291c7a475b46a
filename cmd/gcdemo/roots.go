package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootsCmd = &cobra.Command{
	Use:   "roots",
	Short: "Push a few roots, demonstrate the LIFO pop discipline, and print the root set",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		h, err := newDemoHeap(configPath)
		if err != nil {
			return err
		}

		a, err := h.AllocateObject(0)
		if err != nil {
			return err
		}
		b, err := h.AllocateObject(0)
		if err != nil {
			return err
		}
		h.SetHeader(a, demoHeader(0))
		h.SetHeader(b, demoHeader(0))

		rootA, rootB := a, b
		h.PushRoot(&rootA)
		h.PushRoot(&rootB)

		out := cmd.OutOrStdout()
		h.PrintRoots(out)

		if popErr := h.PopRoot(&rootA); popErr != nil {
			color.New(color.FgYellow).Fprintf(out, "pop out of order, as expected: %v\n", popErr)
		} else {
			return fmt.Errorf("popping out of order unexpectedly succeeded")
		}

		if err := h.PopRoot(&rootB); err != nil {
			return err
		}
		if err := h.PopRoot(&rootA); err != nil {
			return err
		}
		h.PrintRoots(out)
		return nil
	},
}
