package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tdmkit/dvec/codec"
)

var archiveGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Write an archived vector back out as a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveGet,
}

var archiveRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Remove an archived vector",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveRm,
}

func init() {
	archiveGetCmd.Flags().StringP("out", "o", "", "destination file (default <ID>"+codec.FileSuffix+")")
	archiveCmd.AddCommand(archiveGetCmd)
	archiveCmd.AddCommand(archiveRmCmd)
}

func runArchiveGet(cmd *cobra.Command, args []string) error {
	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		path = args[0] + codec.FileSuffix
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	entry, err := store.Export(cmd.Context(), args[0], f)
	if err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%q, %d bytes)\n",
		path, entry.Name, entry.Size)

	return nil
}

func runArchiveRm(cmd *cobra.Command, args []string) error {
	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])

	return nil
}
