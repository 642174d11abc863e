package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/nibrs-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "nibrs",
	Short: "Law-enforcement agency dataset cleaning pipeline",
	Long:  "Cleans the raw agency dataset (dedup, coordinate imputation, type classification, NIBRS consistency repair) and produces the snapshot and adoption summaries the report is built from.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
