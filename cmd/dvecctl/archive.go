package main

import (
	"github.com/spf13/cobra"

	"github.com/tdmkit/dvec/archive"
	"github.com/tdmkit/dvec/internal/logging"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage a SQLite archive of vector files",
	Long: `The archive command group stores encoded vector files in a SQLite
catalogue, keyed by generated IDs and grouped by name. Payloads are kept
verbatim and digest-checked on every read.`,
}

func init() {
	archiveCmd.PersistentFlags().String("db", "dvec-archive.db", "archive database path")
	rootCmd.AddCommand(archiveCmd)
}

// openArchive opens the archive database named by the --db flag.
func openArchive(cmd *cobra.Command) (*archive.Store, error) {
	path, _ := cmd.Flags().GetString("db")

	var opts []archive.Option
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		opts = append(opts, archive.WithLogger(logging.NewSlogDefault()))
	}

	return archive.Open(path, opts...)
}
