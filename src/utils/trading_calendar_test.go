package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsForexSymbol(t *testing.T) {
	cases := []struct {
		symbol string
		want   bool
	}{
		{"EURUSD", true},
		{"GBPJPY", true},
		{"eurusd", false},
		{"EURUS", false},
		{"EURUSDX", false},
		{"VOD.L", false},
		{"EUR.SD", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, isForexSymbol(tc.symbol), "symbol %s", tc.symbol)
	}
}

// -----------------------------------------------------------------------------

func TestGetCalendar_ForexPair(t *testing.T) {
	cal := GetCalendar("EURUSD")
	assert.True(t, cal.Forex)
	assert.Equal(t, "forex", cal.Venue)
	assert.Equal(t, time.UTC, cal.Timezone)
}

func TestGetCalendar_SuffixedInstrument(t *testing.T) {
	cal := GetCalendar("VOD.L")
	assert.False(t, cal.Forex)
	assert.Equal(t, "xlon", cal.Venue)
}

func TestGetCalendar_DefaultsToNYSE(t *testing.T) {
	cal := GetCalendar("AAPL")
	assert.False(t, cal.Forex)
	assert.Equal(t, "xnys", cal.Venue)
}

// -----------------------------------------------------------------------------

func TestForexSessionBoundaries(t *testing.T) {
	cal := GetCalendar("EURUSD")

	cases := []struct {
		name string
		at   time.Time
		open bool
	}{
		{"wednesday midday", time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC), true},
		{"friday before close", time.Date(2026, 9, 4, 21, 59, 0, 0, time.UTC), true},
		{"friday after close", time.Date(2026, 9, 4, 22, 0, 0, 0, time.UTC), false},
		{"saturday", time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC), false},
		{"sunday before open", time.Date(2026, 9, 6, 21, 59, 0, 0, time.UTC), false},
		{"sunday after open", time.Date(2026, 9, 6, 22, 0, 0, 0, time.UTC), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.open, cal.IsOpen(tc.at))
		})
	}
}
