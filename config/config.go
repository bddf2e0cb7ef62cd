package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KorNxHaidar/Trade-Sim/strategies"
)

// Config is the complete replay configuration.
type Config struct {
	Account     AccountConfig      `json:"account" yaml:"account"`
	Instruments []InstrumentConfig `json:"instruments" yaml:"instruments"`
	Seed        int64              `json:"seed" yaml:"seed"`
	Data        DataConfig         `json:"data" yaml:"data"`
	Journal     JournalConfig      `json:"journal" yaml:"journal"`
	Log         LogConfig          `json:"log" yaml:"log"`
}

// AccountConfig sets up the shared ledger.
type AccountConfig struct {
	InitialCash float64 `json:"initial_cash" yaml:"initial_cash"`
}

// InstrumentConfig selects a strategy preset for one instrument, with
// optional per-field overrides on top.
type InstrumentConfig struct {
	Symbol    string     `json:"symbol" yaml:"symbol"`
	Preset    string     `json:"preset" yaml:"preset"` // "intraday" or "longterm"
	Overrides *Overrides `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Overrides are optional knobs layered over a preset. Nil fields keep the
// preset's value.
type Overrides struct {
	RSIPeriod     *int     `json:"rsi_period,omitempty" yaml:"rsi_period,omitempty"`
	Oversold      *float64 `json:"oversold,omitempty" yaml:"oversold,omitempty"`
	Overbought    *float64 `json:"overbought,omitempty" yaml:"overbought,omitempty"`
	MACDFast      *int     `json:"macd_fast,omitempty" yaml:"macd_fast,omitempty"`
	MACDSlow      *int     `json:"macd_slow,omitempty" yaml:"macd_slow,omitempty"`
	MACDSignal    *int     `json:"macd_signal,omitempty" yaml:"macd_signal,omitempty"`
	AllocMin      *float64 `json:"alloc_min,omitempty" yaml:"alloc_min,omitempty"`
	AllocMax      *float64 `json:"alloc_max,omitempty" yaml:"alloc_max,omitempty"`
	StopLossPct   *float64 `json:"stop_loss_pct,omitempty" yaml:"stop_loss_pct,omitempty"`
	TakeProfitPct *float64 `json:"take_profit_pct,omitempty" yaml:"take_profit_pct,omitempty"`
	Window        *int     `json:"window,omitempty" yaml:"window,omitempty"`
}

// DataConfig names the tick exports to replay.
type DataConfig struct {
	Files []string `json:"files" yaml:"files"`
}

// JournalConfig selects where run results are persisted.
type JournalConfig struct {
	Type          string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	StatementFile string `json:"statement_file,omitempty" yaml:"statement_file,omitempty"`
	PortfolioFile string `json:"portfolio_file,omitempty" yaml:"portfolio_file,omitempty"`
	SummaryFile   string `json:"summary_file,omitempty" yaml:"summary_file,omitempty"`
	DBPath        string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LogConfig tunes the structured logger.
type LogConfig struct {
	Level string `json:"level" yaml:"level"` // "debug", "info", "warn", "error"
	Dir   string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// Strategy resolves the instrument's preset plus overrides into a validated
// strategy config.
func (ic InstrumentConfig) Strategy() (strategies.Config, error) {
	var cfg strategies.Config
	switch strings.ToLower(ic.Preset) {
	case "", "intraday":
		cfg = strategies.IntradayDefaults(ic.Symbol)
	case "longterm":
		cfg = strategies.LongTermDefaults(ic.Symbol)
	default:
		return strategies.Config{}, fmt.Errorf("unknown preset %q for %q", ic.Preset, ic.Symbol)
	}

	if o := ic.Overrides; o != nil {
		if o.RSIPeriod != nil {
			cfg.RSIPeriod = *o.RSIPeriod
		}
		if o.Oversold != nil {
			cfg.Oversold = *o.Oversold
		}
		if o.Overbought != nil {
			cfg.Overbought = *o.Overbought
		}
		if o.MACDFast != nil {
			cfg.MACDFast = *o.MACDFast
		}
		if o.MACDSlow != nil {
			cfg.MACDSlow = *o.MACDSlow
		}
		if o.MACDSignal != nil {
			cfg.MACDSignal = *o.MACDSignal
		}
		if o.AllocMin != nil {
			cfg.AllocMin = *o.AllocMin
		}
		if o.AllocMax != nil {
			cfg.AllocMax = *o.AllocMax
		}
		if o.StopLossPct != nil {
			cfg.StopLossPct = *o.StopLossPct
		}
		if o.TakeProfitPct != nil {
			cfg.TakeProfitPct = *o.TakeProfitPct
		}
		if o.Window != nil {
			cfg.Window = *o.Window
		}
	}

	if err := cfg.Validate(); err != nil {
		return strategies.Config{}, fmt.Errorf("instrument %q: %w", ic.Symbol, err)
	}
	return cfg, nil
}

// StrategyConfigs resolves every instrument, preserving config order.
func (c *Config) StrategyConfigs() ([]strategies.Config, error) {
	out := make([]strategies.Config, 0, len(c.Instruments))
	for _, ic := range c.Instruments {
		cfg, err := ic.Strategy()
		if err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, nil
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration as YAML or JSON based on extension.
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

// Validate checks the configuration is runnable.
func (c *Config) Validate() error {
	if c.Account.InitialCash <= 0 {
		return fmt.Errorf("account.initial_cash must be positive")
	}
	if len(c.Instruments) == 0 {
		return fmt.Errorf("at least one instrument is required")
	}

	seen := make(map[string]bool, len(c.Instruments))
	for _, ic := range c.Instruments {
		if ic.Symbol == "" {
			return fmt.Errorf("instrument symbol is required")
		}
		if seen[ic.Symbol] {
			return fmt.Errorf("duplicate instrument %q", ic.Symbol)
		}
		seen[ic.Symbol] = true
		if _, err := ic.Strategy(); err != nil {
			return err
		}
	}

	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.StatementFile == "" || c.Journal.PortfolioFile == "" || c.Journal.SummaryFile == "" {
			return fmt.Errorf("journal statement_file, portfolio_file and summary_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{InitialCash: 1_000_000},
		Instruments: []InstrumentConfig{
			{Symbol: "ADVANC", Preset: "intraday"},
			{Symbol: "PTT", Preset: "intraday"},
		},
		Seed: 2018,
		Journal: JournalConfig{
			Type:          "csv",
			StatementFile: "./statement.csv",
			PortfolioFile: "./portfolio.csv",
			SummaryFile:   "./summary.csv",
		},
		Log: LogConfig{Level: "info"},
	}
}
