package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite journals results into a SQLite database, creating the schema on
// open if it does not exist.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordPricing(r PricingRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO pricings
		(record_id, run_id, option_type, spot, strike, expiry, rate, volatility, dividend_yield,
		 price, delta, gamma, theta, vega, rho, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RecordID, r.RunID, r.OptionType, r.Spot, r.Strike, r.Expiry, r.Rate,
		r.Volatility, r.DividendYield, r.Price, r.Delta, r.Gamma, r.Theta,
		r.Vega, r.Rho, r.Time,
	)
	return err
}

func (j *SQLite) RecordIndicator(r IndicatorRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO indicators
		(record_id, run_id, name, period, samples, final, time)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RecordID, r.RunID, r.Name, r.Period, r.Samples, r.Final, r.Time,
	)
	return err
}

// GetPricing returns a single pricing record by ID.
func (j *SQLite) GetPricing(recordID string) (PricingRecord, error) {
	var rec PricingRecord

	row := j.db.QueryRow(`
		SELECT record_id, run_id, option_type, spot, strike, expiry, rate, volatility, dividend_yield,
		       price, delta, gamma, theta, vega, rho, time
		FROM pricings
		WHERE record_id = ?`, recordID)

	err := row.Scan(
		&rec.RecordID,
		&rec.RunID,
		&rec.OptionType,
		&rec.Spot,
		&rec.Strike,
		&rec.Expiry,
		&rec.Rate,
		&rec.Volatility,
		&rec.DividendYield,
		&rec.Price,
		&rec.Delta,
		&rec.Gamma,
		&rec.Theta,
		&rec.Vega,
		&rec.Rho,
		&rec.Time,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return PricingRecord{}, fmt.Errorf("pricing record %q not found", recordID)
		}
		return PricingRecord{}, err
	}
	return rec, nil
}

// ListPricingsByRun returns all pricing records of a run, oldest first.
// ULIDs sort by creation time, so record_id order is insertion order.
func (j *SQLite) ListPricingsByRun(runID string) ([]PricingRecord, error) {
	rows, err := j.db.Query(`
		SELECT record_id, run_id, option_type, spot, strike, expiry, rate, volatility, dividend_yield,
		       price, delta, gamma, theta, vega, rho, time
		FROM pricings
		WHERE run_id = ?
		ORDER BY record_id ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PricingRecord
	for rows.Next() {
		var rec PricingRecord
		if err := rows.Scan(
			&rec.RecordID,
			&rec.RunID,
			&rec.OptionType,
			&rec.Spot,
			&rec.Strike,
			&rec.Expiry,
			&rec.Rate,
			&rec.Volatility,
			&rec.DividendYield,
			&rec.Price,
			&rec.Delta,
			&rec.Gamma,
			&rec.Theta,
			&rec.Vega,
			&rec.Rho,
			&rec.Time,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListIndicatorsByRun returns all indicator records of a run, oldest first.
func (j *SQLite) ListIndicatorsByRun(runID string) ([]IndicatorRecord, error) {
	rows, err := j.db.Query(`
		SELECT record_id, run_id, name, period, samples, final, time
		FROM indicators
		WHERE run_id = ?
		ORDER BY record_id ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []IndicatorRecord
	for rows.Next() {
		var rec IndicatorRecord
		if err := rows.Scan(
			&rec.RecordID,
			&rec.RunID,
			&rec.Name,
			&rec.Period,
			&rec.Samples,
			&rec.Final,
			&rec.Time,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
