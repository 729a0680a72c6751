package cmd

import (
	"fmt"
	"os"

	"stucash/internal/cli"
	"stucash/internal/config"
	"stucash/internal/model"
	"stucash/internal/pipeline"
	"stucash/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagCity    string
	flagMonth   string
	flagPlan    string
	flagNoCache bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "stucash",
	Short: "Student Cost Survival Planner",
	Long:  "Plan student finances: monthly health score, expense pressure, cash-flow timelines, and debt payoff.",
	RunE:  runScore,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Cost data directory (default from config, then ./data)")
	rootCmd.PersistentFlags().StringVarP(&flagCity, "city", "c", "", "City to analyze (default from config, then first in dataset)")
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Month to analyze, YYYY-MM (default most recent)")
	rootCmd.PersistentFlags().StringVar(&flagPlan, "plan", "", "Plan file with phases and debt inputs")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite cache, reparse everything")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// dataDir resolves the effective data directory: flag first, config second.
func dataDir() string {
	if flagDataDir != "" {
		return flagDataDir
	}
	cfg, _ := config.Load()
	return config.DataDir(cfg)
}

// loadData is the shared data loading path used by all commands.
// Uses SQLite cache when available for fast subsequent runs.
func loadData() (*pipeline.LoadResult, error) {
	dir := dataDir()

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Scanning cost files...\n")
	}

	progressFn := func(current, total int) {
		if flagQuiet {
			return
		}
		if current%50 == 0 || current == total {
			fmt.Fprintf(os.Stderr, "\r  Parsing [%d/%d]", current, total)
		}
	}

	// Try cached load unless --no-cache
	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			// Cache open failed — fall back to uncached
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, doing full parse\n")
			}
		} else {
			defer cache.Close()

			cr, err := pipeline.LoadWithCache(dir, cache, progressFn)
			if err != nil {
				if !flagQuiet {
					fmt.Fprintf(os.Stderr, "\n  Cache error, falling back to full parse\n")
				}
			} else {
				if !flagQuiet && cr.TotalFiles > 0 {
					if cr.Reparsed == 0 {
						fmt.Fprintf(os.Stderr, "\r  Loaded %s records from cache (%d cities)    \n",
							cli.FormatNumber(int64(len(cr.Records))),
							cr.CityCount,
						)
					} else {
						fmt.Fprintf(os.Stderr, "\r  %s cached + %d reparsed (%d cities)    \n",
							cli.FormatNumber(int64(cr.CacheHits)),
							cr.Reparsed,
							cr.CityCount,
						)
					}
				}
				return &cr.LoadResult, nil
			}
		}
	}

	// Uncached path
	result, err := pipeline.Load(dir, progressFn)
	if err != nil {
		return nil, err
	}

	if !flagQuiet && result.TotalFiles > 0 {
		fmt.Fprintf(os.Stderr, "\r  Parsed %s records across %d cities    \n",
			cli.FormatNumber(int64(len(result.Records))),
			result.CityCount,
		)
	}

	return result, nil
}

// pickRecord resolves the --city/--month selection against the dataset.
// City falls back to the config default, then the first city alphabetically.
// Month falls back to the city's most recent month.
func pickRecord(records []model.CostRecord) (model.CostRecord, error) {
	cities := pipeline.Cities(records)
	if len(cities) == 0 {
		return model.CostRecord{}, fmt.Errorf("no cost records in %s", dataDir())
	}

	city := flagCity
	if city == "" {
		cfg, _ := config.Load()
		city = cfg.General.DefaultCity
	}
	if city == "" {
		city = cities[0]
	}

	months := pipeline.MonthsForCity(records, city)
	if len(months) == 0 {
		return model.CostRecord{}, fmt.Errorf("no records for city %q (have: %v)", city, cities)
	}

	month := flagMonth
	if month == "" {
		month = months[len(months)-1]
	}

	rec, ok := pipeline.FindRecord(records, city, month)
	if !ok {
		return model.CostRecord{}, fmt.Errorf("no record for %s %s (have: %v)", city, month, months)
	}
	return rec, nil
}

// loadPlan resolves and loads the plan file shared by timeline and debt.
func loadPlan() (config.Plan, error) {
	cfg, _ := config.Load()
	path := config.PlanPath(flagPlan, cfg)
	return config.LoadPlan(path)
}

func warnRowErrors(result *pipeline.LoadResult) {
	if result.RowErrors > 0 {
		fmt.Fprintf(os.Stderr, "\n  %d rows skipped (bad month or amount)\n", result.RowErrors)
	}
	if result.FileErrors > 0 {
		fmt.Fprintf(os.Stderr, "  %d files could not be parsed\n", result.FileErrors)
	}
}
