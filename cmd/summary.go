package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/nibrs-cli/internal/ingest"
	"github.com/sells-group/nibrs-cli/internal/report"
)

var (
	summaryCSVPath  string
	summaryXLSXPath string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Compute adoption statistics from a cleaned snapshot",
	RunE: func(cmd *cobra.Command, _ []string) error {
		records, err := ingest.LoadFile(summaryCSVPath)
		if err != nil {
			return eris.Wrap(err, "summary")
		}

		s := report.Build(records)
		formatSummary(os.Stdout, s)

		xlsxPath := summaryXLSXPath
		if xlsxPath == "" {
			xlsxPath = cfg.Output.XLSX
		}
		if xlsxPath != "" {
			if err := report.WriteXLSX(xlsxPath, s); err != nil {
				return eris.Wrap(err, "summary")
			}
			zap.L().Info("summary workbook written", zap.String("xlsx", xlsxPath))
		}
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryCSVPath, "csv", "", "path to cleaned agency CSV (required)")
	summaryCmd.Flags().StringVar(&summaryXLSXPath, "xlsx", "", "optional XLSX workbook output path")
	_ = summaryCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(summaryCmd)
}

// formatSummary writes the adoption breakdowns to out.
func formatSummary(out io.Writer, s *report.Summary) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Agencies:\t%d\n", s.TotalAgencies)
	_, _ = fmt.Fprintf(w, "Reporting NIBRS:\t%d (%.1f%%)\n", s.Reporting, s.ReportingPct)
	_ = w.Flush()

	_, _ = fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TYPE\tTOTAL\tREPORTING\tPCT")
	for _, ts := range s.Types {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%.1f%%\n", ts.Type, ts.Total, ts.Reporting, ts.ReportingPct)
	}
	_ = w.Flush()

	_, _ = fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "YEAR\tADOPTED\tCUMULATIVE")
	for _, ya := range s.Adoption {
		_, _ = fmt.Fprintf(w, "%d\t%d\t%d\n", ya.Year, ya.Adopted, ya.Cumulative)
	}
	_ = w.Flush()
}
