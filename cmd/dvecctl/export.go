package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tdmkit/dvec/codec"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export a vector file's values to CSV",
	Long: `Export writes one CSV row per value: zone,segment,value for zoned
vectors, segment,value for zoneless ones. Rows are ordered by segment key,
then by the zoning's zone order.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "destination file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	payload, err := codec.DecodeFile(args[0])
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := writeCSV(f, payload); err != nil {
			f.Close()
			return err
		}

		return f.Close()
	}

	return writeCSV(cmd.OutOrStdout(), payload)
}

func writeCSV(w io.Writer, payload *codec.Payload) error {
	zoned := payload.ZoningName != ""

	cw := csv.NewWriter(w)
	header := []string{"segment", "value"}
	if zoned {
		header = []string{"zone", "segment", "value"}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, key := range sortedKeys(payload) {
		for i, val := range payload.Data[key] {
			record := []string{key, formatValue(val)}
			if zoned {
				record = []string{payload.ZoneIDs[i], key, formatValue(val)}
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()

	return cw.Error()
}

func formatValue(val float64) string {
	return strconv.FormatFloat(val, 'g', -1, 64)
}
