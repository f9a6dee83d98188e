package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// CSV journals results into two plain CSV files, one for pricings and one
// for indicator runs. Rows are flushed per record so a crashed run still
// leaves readable output.
type CSV struct {
	pricings   *csv.Writer
	indicators *csv.Writer
	pf, inf    *os.File
}

func NewCSV(pricingsPath, indicatorsPath string) (*CSV, error) {
	pf, err := os.Create(pricingsPath)
	if err != nil {
		return nil, err
	}
	inf, err := os.Create(indicatorsPath)
	if err != nil {
		pf.Close()
		return nil, err
	}

	pw := csv.NewWriter(pf)
	iw := csv.NewWriter(inf)

	if err := pw.Write([]string{
		"record_id", "run_id", "option_type",
		"spot", "strike", "expiry", "rate", "volatility", "dividend_yield",
		"price", "delta", "gamma", "theta", "vega", "rho", "time",
	}); err != nil {
		return nil, err
	}
	if err := iw.Write([]string{"record_id", "run_id", "name", "period", "samples", "final", "time"}); err != nil {
		return nil, err
	}

	pw.Flush()
	if err := pw.Error(); err != nil {
		return nil, err
	}
	iw.Flush()
	if err := iw.Error(); err != nil {
		return nil, err
	}

	return &CSV{pricings: pw, indicators: iw, pf: pf, inf: inf}, nil
}

func (j *CSV) RecordPricing(r PricingRecord) error {
	err := j.pricings.Write([]string{
		r.RecordID,
		r.RunID,
		r.OptionType,
		f(r.Spot),
		f(r.Strike),
		f(r.Expiry),
		f(r.Rate),
		f(r.Volatility),
		f(r.DividendYield),
		f(r.Price),
		f(r.Delta),
		f(r.Gamma),
		f(r.Theta),
		f(r.Vega),
		f(r.Rho),
		r.Time.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.pricings.Flush()
	return j.pricings.Error()
}

func (j *CSV) RecordIndicator(r IndicatorRecord) error {
	err := j.indicators.Write([]string{
		r.RecordID,
		r.RunID,
		r.Name,
		strconv.Itoa(r.Period),
		strconv.Itoa(r.Samples),
		f(r.Final),
		r.Time.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.indicators.Flush()
	return j.indicators.Error()
}

func (j *CSV) Close() error {
	j.pricings.Flush()
	if err := j.pricings.Error(); err != nil {
		return err
	}
	j.indicators.Flush()
	if err := j.indicators.Error(); err != nil {
		return err
	}

	if err := j.pf.Close(); err != nil {
		return err
	}
	return j.inf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
