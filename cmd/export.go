package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/nibrs-cli/internal/export"
	"github.com/sells-group/nibrs-cli/internal/ingest"
)

var (
	exportCSVPath     string
	exportGeoJSONPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a cleaned snapshot as GeoJSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		records, err := ingest.LoadFile(exportCSVPath)
		if err != nil {
			return eris.Wrap(err, "export")
		}

		if err := export.WriteGeoJSONFile(exportGeoJSONPath, records); err != nil {
			return eris.Wrap(err, "export")
		}

		zap.L().Info("export complete",
			zap.String("geojson", exportGeoJSONPath),
			zap.Int("rows", len(records)),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportCSVPath, "csv", "", "path to cleaned agency CSV (required)")
	exportCmd.Flags().StringVar(&exportGeoJSONPath, "geojson", "", "GeoJSON output path (required)")
	_ = exportCmd.MarkFlagRequired("csv")
	_ = exportCmd.MarkFlagRequired("geojson")
	rootCmd.AddCommand(exportCmd)
}
