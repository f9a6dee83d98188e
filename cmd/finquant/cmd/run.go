package cmd

import (
	"fmt"
	"time"

	"github.com/finquant/finquant/config"
	"github.com/finquant/finquant/indicators"
	"github.com/finquant/finquant/journal"
	"github.com/finquant/finquant/pkg/id"
	"github.com/finquant/finquant/pricing"
	"github.com/finquant/finquant/series"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a pricing scenario from a configuration file",
	Long: `Load a scenario configuration, price every contract in it, run the
configured EMA over the scenario's price series (if one is set), and journal
the results to CSV or SQLite.

Example:
  finquant run --config scenario.yaml`,
	RunE: runScenario,
}

var runConfigPath string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "path to scenario config (required)")
	runCmd.MarkFlagRequired("config")
}

func openJournal(cfg config.JournalConfig) (journal.Journal, error) {
	switch cfg.Type {
	case "csv":
		return journal.NewCSV(cfg.PricingsFile, cfg.IndicatorsFile)
	case "sqlite":
		return journal.NewSQLite(cfg.DBPath)
	}
	return nil, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(runConfigPath)
	if err != nil {
		return err
	}

	jnl, err := openJournal(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if jnl != nil {
		defer jnl.Close()
	}

	runID := id.New()
	fmt.Printf("Scenario %q (run %s)\n\n", cfg.Scenario.Name, runID)

	for i, contract := range cfg.Scenario.Contracts {
		typ, err := pricing.ParseOptionType(contract.Type)
		if err != nil {
			return fmt.Errorf("contract %d: %w", i, err)
		}
		params := contract.Params()

		res, err := pricing.Price(params, typ)
		if err != nil {
			return fmt.Errorf("contract %d: %w", i, err)
		}

		fmt.Printf("[%d] %-4s S=%.2f K=%.2f T=%.2fy  price=%.4f delta=%.4f gamma=%.4f theta=%.4f vega=%.4f rho=%.4f\n",
			i, typ, params.Spot, params.Strike, params.TimeToExpiry,
			res.Price, res.Delta, res.Gamma, res.Theta, res.Vega, res.Rho)

		if jnl != nil {
			rec := journal.NewPricingRecord(id.New(), runID, params, typ, res, time.Now().UTC())
			if err := jnl.RecordPricing(rec); err != nil {
				return fmt.Errorf("journal pricing: %w", err)
			}
		}
	}

	if cfg.Indicator.SeriesFile != "" {
		prices, err := series.LoadCSV(cfg.Indicator.SeriesFile)
		if err != nil {
			return err
		}

		out, err := indicators.EMASeries(prices, cfg.Indicator.EMAPeriod)
		if err != nil {
			return err
		}
		final := out[len(out)-1]

		fmt.Printf("\nEMA(%d) over %d prices: final=%.6f\n",
			cfg.Indicator.EMAPeriod, len(prices), final.Float64)

		if jnl != nil {
			rec := journal.IndicatorRecord{
				RecordID: id.New(),
				RunID:    runID,
				Name:     fmt.Sprintf("EMA(%d)", cfg.Indicator.EMAPeriod),
				Period:   cfg.Indicator.EMAPeriod,
				Samples:  len(prices),
				Final:    final.Float64,
				Time:     time.Now().UTC(),
			}
			if err := jnl.RecordIndicator(rec); err != nil {
				return fmt.Errorf("journal indicator: %w", err)
			}
		}
	}

	return nil
}
