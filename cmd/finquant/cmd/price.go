package cmd

import (
	"fmt"

	"github.com/finquant/finquant/pricing"
	"github.com/spf13/cobra"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a European option and print its Greeks",
	Long: `Price a single European option under Black-Scholes-Merton.

Vega and rho are reported per 1% move, theta per year.

Example:
  finquant price --type call --spot 100 --strike 105 --expiry 0.5 --rate 0.03 --vol 0.25`,
	RunE: runPrice,
}

var (
	priceType     string
	priceSpot     float64
	priceStrike   float64
	priceExpiry   float64
	priceRate     float64
	priceVol      float64
	priceDividend float64
	priceImplied  float64
)

func init() {
	rootCmd.AddCommand(priceCmd)

	priceCmd.Flags().StringVarP(&priceType, "type", "t", "call", "option type: call or put")
	priceCmd.Flags().Float64VarP(&priceSpot, "spot", "s", 0, "spot price of the underlying (required)")
	priceCmd.Flags().Float64VarP(&priceStrike, "strike", "k", 0, "strike price (required)")
	priceCmd.Flags().Float64VarP(&priceExpiry, "expiry", "e", 0, "time to expiry in years")
	priceCmd.Flags().Float64VarP(&priceRate, "rate", "r", 0, "annualized risk-free rate")
	priceCmd.Flags().Float64VarP(&priceVol, "vol", "v", 0, "annualized volatility")
	priceCmd.Flags().Float64VarP(&priceDividend, "dividend", "q", 0, "annualized continuous dividend yield")
	priceCmd.Flags().Float64Var(&priceImplied, "implied-from", 0, "solve implied volatility from this market price instead of --vol")
	priceCmd.MarkFlagRequired("spot")
	priceCmd.MarkFlagRequired("strike")
}

func runPrice(cmd *cobra.Command, args []string) error {
	typ, err := pricing.ParseOptionType(priceType)
	if err != nil {
		return err
	}

	params := pricing.OptionParams{
		Spot:          priceSpot,
		Strike:        priceStrike,
		TimeToExpiry:  priceExpiry,
		RiskFreeRate:  priceRate,
		Volatility:    priceVol,
		DividendYield: priceDividend,
	}

	if priceImplied > 0 {
		iv, err := pricing.ImpliedVolatility(params, typ, priceImplied)
		if err != nil {
			return err
		}
		fmt.Printf("Implied volatility: %.4f (%.2f%%)\n", iv, iv*100)
		params.Volatility = iv
	}

	res, err := pricing.Price(params, typ)
	if err != nil {
		return err
	}

	fmt.Printf("%s S=%.4f K=%.4f T=%.4fy r=%.4f vol=%.4f q=%.4f\n",
		typ, params.Spot, params.Strike, params.TimeToExpiry,
		params.RiskFreeRate, params.Volatility, params.DividendYield)
	fmt.Printf("  Price: %10.4f\n", res.Price)
	fmt.Printf("  Delta: %10.4f\n", res.Delta)
	fmt.Printf("  Gamma: %10.4f\n", res.Gamma)
	fmt.Printf("  Theta: %10.4f  (per year)\n", res.Theta)
	fmt.Printf("  Vega:  %10.4f  (per 1%% vol)\n", res.Vega)
	fmt.Printf("  Rho:   %10.4f  (per 1%% rate)\n", res.Rho)
	return nil
}
