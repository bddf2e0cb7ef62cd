package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Default().Validate())
}

func TestLoadFromYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sim.yaml")
	body := `account:
  initial_cash: 1000000
seed: 7
instruments:
  - symbol: ADVANC
    preset: intraday
  - symbol: PTT
    preset: longterm
    overrides:
      oversold: 35
      stop_loss_pct: 0.08
data:
  files:
    - ticks.csv
journal:
  type: sqlite
  db_path: runs.db
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 1_000_000.0, cfg.Account.InitialCash)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, []string{"ticks.csv"}, cfg.Data.Files)
	assert.Equal(t, "sqlite", cfg.Journal.Type)

	scs, err := cfg.StrategyConfigs()
	require.NoError(t, err)
	require.Len(t, scs, 2)

	assert.Equal(t, "ADVANC", scs[0].Symbol)
	assert.Equal(t, 14, scs[0].RSIPeriod)
	assert.Equal(t, 40.0, scs[0].Oversold)

	// Longterm preset with two overrides applied on top.
	assert.Equal(t, "PTT", scs[1].Symbol)
	assert.Equal(t, 10, scs[1].RSIPeriod)
	assert.Equal(t, 35.0, scs[1].Oversold)
	assert.Equal(t, 0.08, scs[1].StopLossPct)
	assert.Equal(t, 65.0, scs[1].Overbought)
}

func TestLoadFromJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sim.json")
	body := `{
  "account": {"initial_cash": 500000},
  "instruments": [{"symbol": "AOT", "preset": "intraday"}],
  "journal": {"type": "none"}
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 500_000.0, cfg.Account.InitialCash)
	require.Len(t, cfg.Instruments, 1)
	assert.Equal(t, "AOT", cfg.Instruments[0].Symbol)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sim.yaml")
	want := Default()
	require.NoError(t, want.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cash", func(c *Config) { c.Account.InitialCash = 0 }},
		{"no instruments", func(c *Config) { c.Instruments = nil }},
		{"empty symbol", func(c *Config) { c.Instruments[0].Symbol = "" }},
		{"duplicate symbol", func(c *Config) { c.Instruments[1].Symbol = c.Instruments[0].Symbol }},
		{"unknown preset", func(c *Config) { c.Instruments[0].Preset = "swing" }},
		{"bad override", func(c *Config) {
			over := 200.0
			c.Instruments[0].Overrides = &Overrides{Overbought: &over}
		}},
		{"csv journal missing files", func(c *Config) {
			c.Journal = JournalConfig{Type: "csv"}
		}},
		{"sqlite journal missing path", func(c *Config) {
			c.Journal = JournalConfig{Type: "sqlite"}
		}},
		{"unknown journal type", func(c *Config) { c.Journal.Type = "parquet" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
