package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cheneygc/internal/gc"
	"cheneygc/internal/gcui"
)

var (
	watchRounds int
	watchBurst  int
)

func init() {
	watchCmd.Flags().IntVar(&watchRounds, "rounds", 200, "allocation rounds to run")
	watchCmd.Flags().IntVar(&watchBurst, "burst", 4, "objects allocated per round")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run a synthetic workload while rendering live heap occupancy",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal(os.Stdout) {
			return fmt.Errorf("watch needs a terminal to render to; redirect to `stats` for plain output")
		}

		configPath, _ := cmd.Flags().GetString("config")
		h, err := newDemoHeap(configPath)
		if err != nil {
			return err
		}

		events := make(chan gc.Event, 16)
		h.SetEventSink(events)

		go func() {
			defer close(events)
			for r := 0; r < watchRounds; r++ {
				if _, err := allocChain(h, watchBurst); err != nil {
					return
				}
				time.Sleep(10 * time.Millisecond)
			}
		}()

		model := gcui.NewWatchModel("gcdemo watch", events)
		_, err = tea.NewProgram(model).Run()
		return err
	},
}
