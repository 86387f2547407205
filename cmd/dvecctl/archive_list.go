package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived vectors, newest first",
	Args:  cobra.NoArgs,
	RunE:  runArchiveList,
}

func init() {
	archiveListCmd.Flags().String("name", "", "only list entries with this name")
	archiveListCmd.Flags().Int("limit", 0, "maximum entries to list (0 means all)")
	archiveCmd.AddCommand(archiveListCmd)
}

func runArchiveList(cmd *cobra.Command, _ []string) error {
	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	name, _ := cmd.Flags().GetString("name")
	limit, _ := cmd.Flags().GetInt("limit")

	entries, err := store.List(cmd.Context(), name, limit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSEGMENTATION\tZONING\tTIME\tBYTES\tCREATED")
	for _, entry := range entries {
		zoning := entry.Zoning
		if zoning == "" {
			zoning = "-"
		}
		format := entry.TimeFormat
		if format == "" {
			format = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			entry.ID, entry.Name, entry.Segmentation, zoning, format,
			entry.Size, entry.CreatedAt.Format(time.RFC3339))
	}

	return w.Flush()
}
