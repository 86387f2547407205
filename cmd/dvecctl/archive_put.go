package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tdmkit/dvec/codec"
)

var archivePutCmd = &cobra.Command{
	Use:   "put FILE",
	Short: "Store a vector file in the archive",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchivePut,
}

func init() {
	archivePutCmd.Flags().String("name", "", "entry name (default the file name without its suffix)")
	archiveCmd.AddCommand(archivePutCmd)
}

func runArchivePut(cmd *cobra.Command, args []string) error {
	blob, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(args[0]), codec.FileSuffix)
	}

	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	entry, err := store.PutEncoded(cmd.Context(), name, blob)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "archived %q as %s (%d bytes)\n",
		entry.Name, entry.ID, entry.Size)

	return nil
}
