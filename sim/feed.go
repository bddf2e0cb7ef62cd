package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/KorNxHaidar/Trade-Sim/market"
)

// TickFeed yields ticks one at a time. Implementations should be
// deterministic and return (ok=false, err=nil) at EOF.
type TickFeed interface {
	Next() (t market.Tick, ok bool, err error)
	Close() error
}

// CSVTickFeed reads tick rows from an intraday trade export.
//
// Expected columns:
// ShareCode,TradeDateTime,LastPrice,Volume,Value,Flag
// A header row is allowed. Rows that fail to parse are skipped and counted
// rather than aborting the replay. A zero from/to disables that bound;
// otherwise only ticks in [from, to) pass through.
type CSVTickFeed struct {
	f    *os.File
	r    *csv.Reader
	from time.Time
	to   time.Time

	sawFirst bool
	skipped  int
}

func NewCSVTickFeed(path string, from, to time.Time) (*CSVTickFeed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return &CSVTickFeed{f: f, r: r, from: from, to: to}, nil
}

func (f *CSVTickFeed) Close() error {
	if f.f != nil {
		return f.f.Close()
	}
	return nil
}

// Skipped reports how many rows were dropped as unparseable so far.
func (f *CSVTickFeed) Skipped() int { return f.skipped }

func (f *CSVTickFeed) Next() (market.Tick, bool, error) {
	for {
		row, err := f.r.Read()
		if err == io.EOF {
			return market.Tick{}, false, nil
		}
		if err != nil {
			return market.Tick{}, false, err
		}
		if len(row) == 0 {
			continue
		}

		if !f.sawFirst {
			f.sawFirst = true
			if strings.EqualFold(strings.TrimSpace(row[0]), "ShareCode") {
				continue
			}
		}

		t, ok := parseTickRow(row)
		if !ok {
			f.skipped++
			continue
		}
		if !inRange(t.Time, f.from, f.to) {
			continue
		}
		return t, true, nil
	}
}

func inRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && !t.Before(to) {
		return false
	}
	return true
}

// tickTimeLayouts covers exports with and without fractional seconds.
var tickTimeLayouts = []string{
	"2006-01-02 15:04:05.999999",
	time.RFC3339Nano,
	time.RFC3339,
}

func parseTickRow(row []string) (market.Tick, bool) {
	if len(row) < 4 {
		return market.Tick{}, false
	}

	sym := strings.TrimSpace(row[0])
	if sym == "" {
		return market.Tick{}, false
	}

	ts := strings.TrimSpace(row[1])
	var when time.Time
	for _, layout := range tickTimeLayouts {
		t, err := time.Parse(layout, ts)
		if err == nil {
			when = t
			break
		}
	}
	if when.IsZero() {
		return market.Tick{}, false
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return market.Tick{}, false
	}
	volume, err := strconv.ParseInt(strings.TrimSpace(row[3]), 10, 64)
	if err != nil {
		return market.Tick{}, false
	}

	flag := ""
	if len(row) >= 6 {
		flag = strings.TrimSpace(row[5])
	}

	return market.Tick{
		Symbol: sym,
		Time:   when,
		Price:  price,
		Volume: volume,
		Flag:   flag,
	}, true
}

// LoadCSVTicks drains a CSV export into memory, returning the rows in file
// order plus the number of unparseable rows dropped along the way.
func LoadCSVTicks(path string) ([]market.Tick, int, error) {
	feed, err := NewCSVTickFeed(path, time.Time{}, time.Time{})
	if err != nil {
		return nil, 0, err
	}
	defer feed.Close()

	var ticks []market.Tick
	for {
		t, ok, err := feed.Next()
		if err != nil {
			return nil, feed.Skipped(), fmt.Errorf("read %s: %w", path, err)
		}
		if !ok {
			return ticks, feed.Skipped(), nil
		}
		ticks = append(ticks, t)
	}
}
