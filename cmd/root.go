package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Krithish69/Agriculture-Prediction/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "agripredict",
	Short: "Soil analytics and yield forecasting",
	Long:  "Collects soil and crop parameters, optionally auto-fills weather from the device location, and produces a yield and profit report from the prediction backend.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
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
