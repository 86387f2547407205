package main

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tdmkit/dvec/codec"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Print a vector file's header and totals",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().Bool("segments", false, "include per-segment totals")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	payload, err := codec.DecodeFile(args[0])
	if err != nil {
		return err
	}

	zoning := "zoneless"
	width := 1
	if payload.ZoningName != "" {
		zoning = fmt.Sprintf("%s (%d zones)", payload.ZoningName, len(payload.ZoneIDs))
		width = len(payload.ZoneIDs)
	}
	format := payload.TimeFormat
	if format == "" {
		format = "unset"
	}

	var total float64
	for _, vals := range payload.Data {
		for _, val := range vals {
			total += val
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "file:         %s\n", args[0])
	fmt.Fprintf(out, "segmentation: %s (%d segments)\n", payload.SegmentationName, len(payload.Data))
	fmt.Fprintf(out, "zoning:       %s\n", zoning)
	fmt.Fprintf(out, "time format:  %s\n", format)
	fmt.Fprintf(out, "values:       %d\n", len(payload.Data)*width)
	fmt.Fprintf(out, "total:        %g\n", total)

	if showSegments, _ := cmd.Flags().GetBool("segments"); showSegments {
		fmt.Fprintln(out)
		if err := writeSegmentTotals(cmd, payload); err != nil {
			return err
		}
	}

	return nil
}

func writeSegmentTotals(cmd *cobra.Command, payload *codec.Payload) error {
	keys := sortedKeys(payload)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEGMENT\tTOTAL")
	for _, key := range keys {
		var sum float64
		for _, val := range payload.Data[key] {
			sum += val
		}
		fmt.Fprintf(w, "%s\t%g\n", key, sum)
	}

	return w.Flush()
}

// sortedKeys returns the payload's segment keys in a deterministic order.
func sortedKeys(payload *codec.Payload) []string {
	keys := make([]string, 0, len(payload.Data))
	for key := range payload.Data {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys
}
