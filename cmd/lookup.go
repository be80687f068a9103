package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/civiclookup/civiclookup/internal/format"
	"github.com/civiclookup/civiclookup/internal/lookup"
	"github.com/civiclookup/civiclookup/internal/model"
	"github.com/civiclookup/civiclookup/internal/roster"
	"github.com/civiclookup/civiclookup/pkg/civic"
)

var (
	lookupOutputFormat string
	lookupKeepFields   []string
	lookupDeleteFields []string
	lookupOutput       string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <address or ZIP>...",
	Short: "Look up the congressional district and legislators for an address",
	Long: `Resolves a street address or 5-digit ZIP code to its congressional district
using the Google Civic Information API, then lists the senators and
representative for that district from the cached legislator roster.

Run the update command first to build the roster cache; without it the
district is still resolved but legislators are shown as placeholders.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch lookupOutputFormat {
		case "text", "json", "yaml":
		default:
			return eris.Errorf("lookup: unknown output format %q (use text, json, or yaml)", lookupOutputFormat)
		}

		if cfg.Civic.APIKey == "" {
			return eris.New("lookup: no Google Civic API key configured; set GOOGLE_CIVIC_API_KEY or run 'civiclookup setup'")
		}

		filter, err := model.NewFieldFilter(lookupKeepFields, lookupDeleteFields)
		if err != nil {
			return err
		}

		address := strings.Join(args, " ")

		client := civic.NewClient(cfg.Civic.APIKey,
			civic.WithBaseURL(cfg.Civic.BaseURL),
			civic.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Civic.TimeoutSecs) * time.Second}),
			civic.WithRateLimit(cfg.Civic.RateLimit),
		)
		ro := roster.LoadOrEmpty(filepath.Join(cfg.Roster.CacheDir, roster.LookupName))

		res := lookup.New(client, ro).DistrictInfo(cmd.Context(), address, filter)

		out, err := format.Render(res, lookupOutputFormat)
		if err != nil {
			return err
		}

		if lookupOutput != "" {
			if dir := filepath.Dir(lookupOutput); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return eris.Wrapf(err, "lookup: create output dir %s", dir)
				}
			}
			if err := os.WriteFile(lookupOutput, out, 0o644); err != nil {
				return eris.Wrapf(err, "lookup: write %s", lookupOutput)
			}
			fmt.Printf("Output written to %s\n", lookupOutput)
			return nil
		}

		fmt.Println(string(out))
		return nil
	},
}

func init() {
	lookupCmd.Flags().StringVar(&lookupOutputFormat, "output-format", "text", "output format: text, json, or yaml")
	lookupCmd.Flags().StringSliceVar(&lookupKeepFields, "keep-fields", nil, "keep only these legislator fields in the output")
	lookupCmd.Flags().StringSliceVar(&lookupDeleteFields, "delete-fields", nil, "drop these legislator fields from the output")
	lookupCmd.Flags().StringVar(&lookupOutput, "output", "", "write output to a file instead of stdout")
	lookupCmd.MarkFlagsMutuallyExclusive("keep-fields", "delete-fields")
	rootCmd.AddCommand(lookupCmd)
}
