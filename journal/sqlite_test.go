package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/finquant/finquant/pricing"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	assert.NoError(t, err)

	return j, path
}

func samplePricingRecord(recordID, runID string) PricingRecord {
	params := pricing.OptionParams{
		Spot:         100,
		Strike:       105,
		TimeToExpiry: 0.5,
		RiskFreeRate: 0.03,
		Volatility:   0.25,
	}
	res := pricing.PricingResult{
		Price: 5.123, Delta: 0.45, Gamma: 0.021, Theta: -4.2, Vega: 0.27, Rho: 0.19,
	}
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return NewPricingRecord(recordID, runID, params, pricing.Call, res, at)
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('pricings','indicators')`)
	assert.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["pricings"])
	assert.True(t, found["indicators"])
}

func TestSQLiteRecordPricing(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	rec := samplePricingRecord("R1", "RUN1")
	assert.NoError(t, j.RecordPricing(rec))

	got, err := j.GetPricing("R1")
	assert.NoError(t, err)
	assert.Equal(t, "call", got.OptionType)
	assert.Equal(t, rec.Spot, got.Spot)
	assert.Equal(t, rec.Price, got.Price)
	assert.Equal(t, rec.Rho, got.Rho)
	assert.True(t, rec.Time.Equal(got.Time))
}

func TestSQLiteGetPricingMissing(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	_, err := j.GetPricing("missing")
	assert.Error(t, err)
}

func TestSQLiteListByRun(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	// record_id carries the ordering; ULIDs are time-sortable strings.
	assert.NoError(t, j.RecordPricing(samplePricingRecord("A1", "RUN1")))
	assert.NoError(t, j.RecordPricing(samplePricingRecord("A2", "RUN1")))
	assert.NoError(t, j.RecordPricing(samplePricingRecord("B1", "RUN2")))

	got, err := j.ListPricingsByRun("RUN1")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "A1", got[0].RecordID)
	assert.Equal(t, "A2", got[1].RecordID)

	other, err := j.ListPricingsByRun("RUN2")
	assert.NoError(t, err)
	assert.Len(t, other, 1)

	empty, err := j.ListPricingsByRun("RUN3")
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSQLiteRecordIndicator(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	rec := IndicatorRecord{
		RecordID: "I1",
		RunID:    "RUN1",
		Name:     "EMA(10)",
		Period:   10,
		Samples:  250,
		Final:    101.375,
		Time:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, j.RecordIndicator(rec))

	got, err := j.ListIndicatorsByRun("RUN1")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "EMA(10)", got[0].Name)
	assert.Equal(t, 10, got[0].Period)
	assert.Equal(t, 250, got[0].Samples)
	assert.Equal(t, 101.375, got[0].Final)
}
