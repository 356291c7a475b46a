package main

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"cheneygc/internal/gc"
)

var (
	benchHeaps  int
	benchAllocs int
	benchJobs   int
)

func init() {
	benchCmd.Flags().IntVar(&benchHeaps, "heaps", 8, "independent Heap instances to run")
	benchCmd.Flags().IntVar(&benchAllocs, "allocs", 4096, "allocations per heap")
	benchCmd.Flags().IntVar(&benchJobs, "jobs", 0, "max concurrent heaps (0 = no limit)")
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run many independent heaps concurrently and report allocated bytes and cycles",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		jobs, err := safecast.Conv[uint](benchJobs)
		if err != nil {
			return fmt.Errorf("jobs: %w", err)
		}

		results := make([]gc.Stats, benchHeaps)

		g, ctx := errgroup.WithContext(cmd.Context())
		if jobs > 0 {
			g.SetLimit(int(jobs))
		}

		for i := 0; i < benchHeaps; i++ {
			g.Go(func(i int) func() error {
				return func() error {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}

					h, err := newDemoHeap(configPath)
					if err != nil {
						return fmt.Errorf("heap %d: %w", i, err)
					}
					if _, err := allocChain(h, benchAllocs); err != nil {
						return fmt.Errorf("heap %d: %w", i, err)
					}
					results[i] = h.Snapshot()
					return nil
				}
			}(i))
		}

		if err := g.Wait(); err != nil {
			return err
		}

		printer := message.NewPrinter(language.English)
		out := cmd.OutOrStdout()
		var totalBytes, totalCycles uint64
		for i, s := range results {
			totalBytes += s.TotalAllocatedBytes
			totalCycles += s.TotalCycles
			printer.Fprintf(out, "heap %d: %v bytes allocated, %v cycles\n",
				i, number.Decimal(s.TotalAllocatedBytes), number.Decimal(s.TotalCycles))
		}

		color.New(color.FgGreen, color.Bold).Fprintf(out, "total: %s bytes across %d heaps, %s collection cycles\n",
			printer.Sprintf("%v", number.Decimal(totalBytes)), benchHeaps, printer.Sprintf("%v", number.Decimal(totalCycles)))
		return nil
	},
}
