package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestRoundTripYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := Default()
	cfg.Scenario.Name = "round-trip"
	cfg.Scenario.Contracts[0].DividendYield = 0.01
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestRoundTripJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")

	cfg := Default()
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidateRejects(t *testing.T) {
	broken := func(mutate func(*Config)) *Config {
		cfg := Default()
		mutate(cfg)
		return cfg
	}

	cases := map[string]*Config{
		"missing name":     broken(func(c *Config) { c.Scenario.Name = "" }),
		"no contracts":     broken(func(c *Config) { c.Scenario.Contracts = nil }),
		"bad option type":  broken(func(c *Config) { c.Scenario.Contracts[0].Type = "straddle" }),
		"negative spot":    broken(func(c *Config) { c.Scenario.Contracts[0].Spot = -5 }),
		"zero ema period":  broken(func(c *Config) { c.Indicator.EMAPeriod = 0 }),
		"bad journal type": broken(func(c *Config) { c.Journal.Type = "redis" }),
		"csv no files":     broken(func(c *Config) { c.Journal.PricingsFile = "" }),
		"sqlite no path":   broken(func(c *Config) { c.Journal.Type = "sqlite"; c.Journal.DBPath = "" }),
	}

	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestContractParams(t *testing.T) {
	c := ContractConfig{Type: "put", Spot: 105, Strike: 110, Expiry: 0.5, Rate: 0.03, Volatility: 0.25, DividendYield: 0.02}
	p := c.Params()

	assert.Equal(t, 105.0, p.Spot)
	assert.Equal(t, 110.0, p.Strike)
	assert.Equal(t, 0.5, p.TimeToExpiry)
	assert.Equal(t, 0.03, p.RiskFreeRate)
	assert.Equal(t, 0.25, p.Volatility)
	assert.Equal(t, 0.02, p.DividendYield)
}
