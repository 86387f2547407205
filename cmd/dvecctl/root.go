// Package main implements dvecctl, a command line tool for inspecting,
// exporting and archiving segmented vector files.
//
// root.go defines the root command and registers all subcommands. Commands
// operate on the encoded payload directly and never need zoning or
// segmentation oracles.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dvecctl",
	Short: "Inspect, export and archive segmented vector files",
	Long: `dvecctl works with vector files in the dvec binary format (.dvec.zst).
It prints file headers and totals, exports values to CSV, and manages a
SQLite archive of encoded vectors.`,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log archive operations")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dvecctl:", err)
		os.Exit(1)
	}
}
