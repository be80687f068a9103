package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/civiclookup/civiclookup/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "civiclookup",
	Short: "Find US congressional districts and federal legislators",
	Long:  "Resolves a street address or ZIP code to its congressional district via the Google Civic Information API and lists the senators and representative serving it.",
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
