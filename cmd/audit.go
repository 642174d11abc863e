package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/nibrs-cli/internal/ingest"
	"github.com/sells-group/nibrs-cli/internal/model"
	"github.com/sells-group/nibrs-cli/internal/pipeline"
)

var auditCSVPath string

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Report data-quality diagnostics for a raw agency CSV",
	Long:  "Computes pre-clean diagnostics without persisting anything: duplicate rows, agency name collisions, NIBRS flag/date mismatches in both directions, and coordinate coverage before and after a dry-run imputation.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		records, err := ingest.LoadFile(auditCSVPath)
		if err != nil {
			return eris.Wrap(err, "audit")
		}

		formatAudit(os.Stdout, records)
		return nil
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditCSVPath, "csv", "", "path to raw agency CSV (required)")
	_ = auditCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(auditCmd)
}

// formatAudit runs the pure pipeline stages against a throwaway copy of
// the dataset and writes the diagnostics to out.
func formatAudit(out io.Writer, records []model.AgencyRecord) {
	deduped, dedupStats := pipeline.Dedupe(records)
	mismatches := pipeline.CountMismatches(deduped)

	coordsBefore := countCoords(deduped)
	imputed, imputeStats := pipeline.ImputeCoordinates(deduped)
	coordsAfter := countCoords(imputed)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Rows:\t%d\n", len(records))
	_, _ = fmt.Fprintf(w, "Exact duplicate rows:\t%d\n", dedupStats.Exact)
	_, _ = fmt.Fprintf(w, "Identity duplicate rows:\t%d\n", dedupStats.Key)
	_, _ = fmt.Fprintf(w, "Name collisions (distinct agencies, kept):\t%d\n", dedupStats.NameCollisions)
	_, _ = fmt.Fprintf(w, "Flag false but start date present:\t%d\n", mismatches.FlagFalseWithDate)
	_, _ = fmt.Fprintf(w, "Flag true but no start date:\t%d\n", mismatches.FlagTrueNoDate)
	_, _ = fmt.Fprintf(w, "Geocoded before imputation:\t%d/%d\n", coordsBefore, len(deduped))
	_, _ = fmt.Fprintf(w, "Geocoded after imputation:\t%d/%d\n", coordsAfter, len(deduped))
	_, _ = fmt.Fprintf(w, "  Filled from peers:\t%d\n", imputeStats.Peer)
	_, _ = fmt.Fprintf(w, "  Filled from county centroid:\t%d\n", imputeStats.County)
	_, _ = fmt.Fprintf(w, "  Filled from state centroid:\t%d\n", imputeStats.State)
	_, _ = fmt.Fprintf(w, "  Unresolvable:\t%d\n", imputeStats.Remaining)
	_ = w.Flush()
}

func countCoords(records []model.AgencyRecord) int {
	var n int
	for _, r := range records {
		if r.HasCoordinates() {
			n++
		}
	}
	return n
}
