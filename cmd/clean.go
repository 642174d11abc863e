package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/nibrs-cli/internal/export"
	"github.com/sells-group/nibrs-cli/internal/ingest"
	"github.com/sells-group/nibrs-cli/internal/pipeline"
)

var (
	cleanCSVPath     string
	cleanOutPath     string
	cleanGeoJSONPath string
	cleanNoStore     bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Run the cleaning pipeline over a raw agency CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		records, err := ingest.LoadFile(cleanCSVPath)
		if err != nil {
			return eris.Wrap(err, "clean")
		}

		cleaner := pipeline.New(nil)
		if !cleanNoStore {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck
			if err := st.Migrate(ctx); err != nil {
				return err
			}
			cleaner = pipeline.New(st)
		}

		result, err := cleaner.Run(ctx, cleanCSVPath, records)
		if err != nil {
			return eris.Wrap(err, "clean")
		}

		outPath := cleanOutPath
		if outPath == "" {
			outPath = cfg.Output.CSV
		}
		geoPath := cleanGeoJSONPath
		if geoPath == "" {
			geoPath = cfg.Output.GeoJSON
		}

		// The artifacts are independent projections of the same snapshot.
		g, _ := errgroup.WithContext(ctx)
		g.Go(func() error {
			return export.WriteCSVFile(outPath, result.Records)
		})
		if geoPath != "" {
			g.Go(func() error {
				return export.WriteGeoJSONFile(geoPath, result.Records)
			})
		}
		if err := g.Wait(); err != nil {
			return eris.Wrap(err, "clean: write artifacts")
		}

		zap.L().Info("clean complete",
			zap.String("run_id", result.RunID),
			zap.String("csv", outPath),
			zap.Int("rows_in", result.Stats.RowsIn),
			zap.Int("rows_out", result.Stats.RowsOut),
			zap.Int("exact_duplicates", result.Stats.ExactDuplicates),
			zap.Int("key_duplicates", result.Stats.KeyDuplicates),
			zap.Int("imputed_peer", result.Stats.ImputedPeer),
			zap.Int("imputed_county", result.Stats.ImputedCounty),
			zap.Int("imputed_state", result.Stats.ImputedState),
			zap.Int("missing_coordinates", result.Stats.MissingCoordinates),
			zap.Int("flag_repairs", result.Stats.FlagRepairs),
		)
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVar(&cleanCSVPath, "csv", "", "path to raw agency CSV (required)")
	cleanCmd.Flags().StringVar(&cleanOutPath, "out", "", "cleaned CSV output path (default from config)")
	cleanCmd.Flags().StringVar(&cleanGeoJSONPath, "geojson", "", "optional GeoJSON output path")
	cleanCmd.Flags().BoolVar(&cleanNoStore, "no-store", false, "skip run/snapshot persistence")
	_ = cleanCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(cleanCmd)
}
