package sim

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCSVTicks(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "ticks.csv", `ShareCode,TradeDateTime,LastPrice,Volume,Value,Flag
ADVANC,2025-09-17 10:00:00.123456,281.00,500,140500.00,OPEN1
PTT,2025-09-17 10:00:01,31.25,1000,31250.00,
ADVANC,2025-09-17 10:00:02,281.50,200,56300.00,
`)

	ticks, skipped, err := LoadCSVTicks(path)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, ticks, 3)

	assert.Equal(t, "ADVANC", ticks[0].Symbol)
	assert.Equal(t, 281.0, ticks[0].Price)
	assert.Equal(t, int64(500), ticks[0].Volume)
	assert.Equal(t, "OPEN1", ticks[0].Flag)
	assert.Equal(t,
		time.Date(2025, 9, 17, 10, 0, 0, 123456000, time.UTC),
		ticks[0].Time)

	assert.Equal(t, "PTT", ticks[1].Symbol)
	assert.Equal(t, "", ticks[1].Flag)

	for _, tk := range ticks {
		assert.NoError(t, tk.Validate())
	}
}

func TestLoadCSVTicksSkipsBadRows(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "ticks.csv", `ShareCode,TradeDateTime,LastPrice,Volume,Value,Flag
ADVANC,2025-09-17 10:00:00,281.00,500,140500.00,
,2025-09-17 10:00:01,31.25,1000,31250.00,
PTT,not-a-time,31.25,1000,31250.00,
PTT,2025-09-17 10:00:03,abc,1000,,
PTT,2025-09-17 10:00:04,31.50,xyz,,
PTT,2025-09-17 10:00:05,31.75,1000,31750.00,
`)

	ticks, skipped, err := LoadCSVTicks(path)
	require.NoError(t, err)
	assert.Equal(t, 4, skipped)
	require.Len(t, ticks, 2)
	assert.Equal(t, "ADVANC", ticks[0].Symbol)
	assert.Equal(t, "PTT", ticks[1].Symbol)
	assert.Equal(t, 31.75, ticks[1].Price)
}

func TestCSVTickFeedWithoutHeader(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "ticks.csv",
		"ADVANC,2025-09-17 10:00:00,281.00,500,140500.00,STD\n")

	feed, err := NewCSVTickFeed(path, time.Time{}, time.Time{})
	require.NoError(t, err)
	defer feed.Close()

	tk, ok, err := feed.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ADVANC", tk.Symbol)
	assert.Equal(t, "STD", tk.Flag)

	_, ok, err = feed.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCSVTickFeedTimeRange(t *testing.T) {
	t.Parallel()

	path := writeCSV(t, "ticks.csv", `ShareCode,TradeDateTime,LastPrice,Volume,Value,Flag
PTT,2025-09-17 09:59:59,31.00,100,3100.00,
PTT,2025-09-17 10:00:00,31.25,100,3125.00,
PTT,2025-09-17 10:00:01,31.50,100,3150.00,
PTT,2025-09-17 10:00:02,31.75,100,3175.00,
`)

	from := time.Date(2025, 9, 17, 10, 0, 0, 0, time.UTC)
	to := time.Date(2025, 9, 17, 10, 0, 2, 0, time.UTC)
	feed, err := NewCSVTickFeed(path, from, to)
	require.NoError(t, err)
	defer feed.Close()

	var got []float64
	for {
		tk, ok, err := feed.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, tk.Price)
	}
	// [from, to): the 09:59:59 and 10:00:02 prints fall outside the window.
	assert.Equal(t, []float64{31.25, 31.50}, got)
	assert.Zero(t, feed.Skipped(), "out-of-range rows are filtered, not skipped as malformed")
}

func TestNewCSVTickFeedMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewCSVTickFeed(filepath.Join(t.TempDir(), "absent.csv"), time.Time{}, time.Time{})
	assert.Error(t, err)
}
