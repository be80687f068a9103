package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/civiclookup/civiclookup/internal/model"
	"github.com/civiclookup/civiclookup/internal/roster"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Download legislator data and rebuild the lookup cache",
	Long: `Downloads the current members of Congress from the unitedstates project
(legislators-current.csv) and rebuilds the JSON lookup used by the lookup
command. The download is skipped while the cached CSV is younger than
roster.cache_ttl_hours (default 24h); delete the CSV to force a refresh.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log := zap.L().With(zap.String("command", "update"))

		keep, _ := cmd.Flags().GetStringSlice("keep-fields")
		del, _ := cmd.Flags().GetStringSlice("delete-fields")
		outPath, _ := cmd.Flags().GetString("output")

		filter, err := model.NewFieldFilter(keep, del)
		if err != nil {
			return err
		}
		if outPath == "" {
			outPath = filepath.Join(cfg.Roster.CacheDir, roster.LookupName)
		}

		csvPath := filepath.Join(cfg.Roster.CacheDir, roster.CSVName)
		ttl := time.Duration(cfg.Roster.CacheTTLHours) * time.Hour

		downloaded, err := roster.FetchCSV(ctx, nil, cfg.Roster.CSVURL, csvPath, ttl)
		if err != nil {
			return eris.Wrap(err, "update: fetch legislators CSV")
		}
		if downloaded {
			log.Info("downloaded legislators CSV",
				zap.String("url", cfg.Roster.CSVURL),
				zap.String("path", csvPath),
			)
		}

		f, err := os.Open(csvPath)
		if err != nil {
			return eris.Wrapf(err, "update: open %s", csvPath)
		}
		defer f.Close() //nolint:errcheck

		header, rows, err := roster.ParseCSV(f)
		if err != nil {
			return eris.Wrap(err, "update: parse legislators CSV")
		}

		// Reject unknown filter fields before building anything.
		if err := filter.Validate(header); err != nil {
			return err
		}

		lk := roster.Build(rows, filter)
		if err := lk.Save(outPath); err != nil {
			return eris.Wrap(err, "update: save lookup")
		}

		summary := fmt.Sprintf("Generated lookup: %d states, %d districts written to %s",
			len(lk.States), len(lk.Districts), outPath)
		if note := filter.Describe(); note != "" {
			summary += " (" + note + ")"
		}
		fmt.Println(summary)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringSlice("keep-fields", nil, "keep only these CSV fields per legislator")
	updateCmd.Flags().StringSlice("delete-fields", nil, "drop these CSV fields per legislator")
	updateCmd.Flags().String("output", "", "lookup output path (default: <cache_dir>/legislators-lookup.json)")
	updateCmd.MarkFlagsMutuallyExclusive("keep-fields", "delete-fields")
	rootCmd.AddCommand(updateCmd)
}
