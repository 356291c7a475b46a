// Command gcdemo drives the copying collector in internal/gc through a set
// of synthetic workloads, for manual inspection and benchmarking.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "gcdemo",
	Short: "Drive the two-space copying collector through synthetic workloads",
}

func main() {
	rootCmd.AddCommand(allocCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(rootsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(benchCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a gc.toml overriding the heap's defaults")
	rootCmd.PersistentFlags().Bool("quiet", false, "accepted but ignored: no subcommand reads it")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
