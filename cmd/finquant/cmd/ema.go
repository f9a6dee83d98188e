package cmd

import (
	"fmt"

	"github.com/finquant/finquant/indicators"
	"github.com/finquant/finquant/series"
	"github.com/spf13/cobra"
)

var emaCmd = &cobra.Command{
	Use:   "ema",
	Short: "Compute an exponential moving average over a price series",
	Long: `Compute a period-N EMA over close prices read from a CSV file
(.xz compressed input is decompressed transparently).

By default the batch transform is used: the value at index N-1 is seeded
with the simple average of the first N prices and earlier entries are
reported as warm-up. With --streaming, a streaming calculator is fed one
price at a time instead; it seeds on the first price, so early values
differ from the batch output on purpose.

Example:
  finquant ema --file closes.csv --period 10`,
	RunE: runEMA,
}

var (
	emaFile      string
	emaPeriod    int
	emaStreaming bool
)

func init() {
	rootCmd.AddCommand(emaCmd)

	emaCmd.Flags().StringVarP(&emaFile, "file", "f", "", "CSV file of close prices (required)")
	emaCmd.Flags().IntVarP(&emaPeriod, "period", "n", 10, "EMA period")
	emaCmd.Flags().BoolVar(&emaStreaming, "streaming", false, "feed a streaming calculator instead of the batch transform")
	emaCmd.MarkFlagRequired("file")
}

func runEMA(cmd *cobra.Command, args []string) error {
	prices, err := series.LoadCSV(emaFile)
	if err != nil {
		return err
	}

	if emaStreaming {
		ema, err := indicators.NewEMA(emaPeriod)
		if err != nil {
			return err
		}
		for i, p := range prices {
			v := ema.Update(p)
			fmt.Printf("%6d  %12.6f  %12.6f\n", i, p, v)
		}
		return nil
	}

	out, err := indicators.EMASeries(prices, emaPeriod)
	if err != nil {
		return err
	}
	for i, p := range prices {
		if out[i].Valid {
			fmt.Printf("%6d  %12.6f  %12.6f\n", i, p, out[i].Float64)
		} else {
			fmt.Printf("%6d  %12.6f  %12s\n", i, p, "warm-up")
		}
	}
	return nil
}
