package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/finquant/finquant/pricing"
	"gopkg.in/yaml.v3"
)

// Config represents a complete computation scenario: the option contracts to
// price, the indicator settings and where results are journaled.
type Config struct {
	Scenario  ScenarioConfig  `json:"scenario" yaml:"scenario"`
	Indicator IndicatorConfig `json:"indicator" yaml:"indicator"`
	Journal   JournalConfig   `json:"journal" yaml:"journal"`
}

// ScenarioConfig names the run and lists the contracts to price.
type ScenarioConfig struct {
	Name      string           `json:"name" yaml:"name"`
	Contracts []ContractConfig `json:"contracts" yaml:"contracts"`
}

// ContractConfig describes one option contract. Expiry is in years, rates
// and volatility are annualized.
type ContractConfig struct {
	Type          string  `json:"type" yaml:"type"` // "call" or "put"
	Spot          float64 `json:"spot" yaml:"spot"`
	Strike        float64 `json:"strike" yaml:"strike"`
	Expiry        float64 `json:"expiry" yaml:"expiry"`
	Rate          float64 `json:"rate" yaml:"rate"`
	Volatility    float64 `json:"volatility" yaml:"volatility"`
	DividendYield float64 `json:"dividend_yield,omitempty" yaml:"dividend_yield,omitempty"`
}

// Params converts the contract into pricing engine parameters.
func (c ContractConfig) Params() pricing.OptionParams {
	return pricing.OptionParams{
		Spot:          c.Spot,
		Strike:        c.Strike,
		TimeToExpiry:  c.Expiry,
		RiskFreeRate:  c.Rate,
		Volatility:    c.Volatility,
		DividendYield: c.DividendYield,
	}
}

// IndicatorConfig contains EMA parameters and an optional price-series file
// for the scenario's indicator pass (empty skips it).
type IndicatorConfig struct {
	EMAPeriod  int    `json:"ema_period" yaml:"ema_period"`
	SeriesFile string `json:"series_file,omitempty" yaml:"series_file,omitempty"`
}

// JournalConfig selects where results are recorded.
type JournalConfig struct {
	Type           string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	PricingsFile   string `json:"pricings_file,omitempty" yaml:"pricings_file,omitempty"`
	IndicatorsFile string `json:"indicators_file,omitempty" yaml:"indicators_file,omitempty"`
	DBPath         string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON.
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON unless the extension is
// .yaml or .yml).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid. Contract parameters go
// through the pricing engine's own domain rules so a bad scenario is
// rejected before any computation runs.
func (c *Config) Validate() error {
	if c.Scenario.Name == "" {
		return fmt.Errorf("scenario.name is required")
	}
	if len(c.Scenario.Contracts) == 0 {
		return fmt.Errorf("scenario.contracts must list at least one contract")
	}
	for i, contract := range c.Scenario.Contracts {
		if _, err := pricing.ParseOptionType(contract.Type); err != nil {
			return fmt.Errorf("scenario.contracts[%d]: %w", i, err)
		}
		if err := contract.Params().Validate(); err != nil {
			return fmt.Errorf("scenario.contracts[%d]: %w", i, err)
		}
	}
	if c.Indicator.EMAPeriod <= 0 {
		return fmt.Errorf("indicator.ema_period must be positive")
	}
	switch c.Journal.Type {
	case "none", "":
	case "csv":
		if c.Journal.PricingsFile == "" || c.Journal.IndicatorsFile == "" {
			return fmt.Errorf("journal pricings_file and indicators_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}
	return nil
}

// Default returns a configuration with a sample ATM scenario.
func Default() *Config {
	return &Config{
		Scenario: ScenarioConfig{
			Name: "atm-sample",
			Contracts: []ContractConfig{
				{Type: "call", Spot: 100, Strike: 100, Expiry: 1, Rate: 0.05, Volatility: 0.2},
				{Type: "put", Spot: 100, Strike: 100, Expiry: 1, Rate: 0.05, Volatility: 0.2},
			},
		},
		Indicator: IndicatorConfig{
			EMAPeriod: 10,
		},
		Journal: JournalConfig{
			Type:           "csv",
			PricingsFile:   "./pricings.csv",
			IndicatorsFile: "./indicators.csv",
		},
	}
}
