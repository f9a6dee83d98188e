// Package series loads close-price series from CSV files for the CLI and
// scenario runner. Files compressed with xz are decompressed transparently,
// matching how downloaded market data is usually stored.
package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
)

// LoadCSV reads a price series from a CSV file. Each record contributes its
// last numeric field, so both one-column files and OHLC-style exports with a
// trailing close column work. A non-numeric first row is treated as a header
// and skipped. Files ending in .xz are decompressed on the fly.
func LoadCSV(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open xz stream: %w", err)
		}
		r = xr
	}

	return Read(r)
}

// Read parses a price series from CSV data.
func Read(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // allow ragged rows

	var prices []float64
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read series: %w", err)
		}
		line++

		if len(record) == 0 {
			continue
		}
		field := strings.TrimSpace(record[len(record)-1])
		if field == "" {
			continue
		}

		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			if line == 1 {
				continue // header row
			}
			return nil, fmt.Errorf("series line %d: bad price %q", line, field)
		}
		prices = append(prices, v)
	}

	if len(prices) == 0 {
		return nil, fmt.Errorf("series contains no prices")
	}
	return prices, nil
}
