package utils

import (
	"strings"
	"time"

	"github.com/scmhub/calendar"
)

// micBySuffix maps common exchange suffixes to ISO 10383 MIC codes
// understood by scmhub/calendar.
var micBySuffix = map[string]string{
	".L":  "xlon",
	".PA": "xpar",
	".DE": "xfra",
	".AS": "xams",
	".MI": "xmil",
	".MC": "xmad",
	".SW": "xswx",
	".TO": "xtse",
	".T":  "xtks",
	".HK": "xhkg",
	".AX": "xasx",
}

// TradingCalendar answers whether the market behind a symbol is open. Plain
// six-letter pairs are treated as forex (continuous Sunday 22:00 UTC to
// Friday 22:00 UTC); suffixed instruments use the exchange calendar, with a
// simple Mon-Fri 09:30-16:00 New York fallback when no calendar is known.
type TradingCalendar struct {
	Calendar *calendar.Calendar
	Venue    string
	Forex    bool
	Fallback bool
	Timezone *time.Location
}

// -----------------------------------------------------------------------------

func GetCalendar(symbol string) *TradingCalendar {
	if isForexSymbol(symbol) {
		return &TradingCalendar{Venue: "forex", Forex: true, Timezone: time.UTC}
	}

	mic := "xnys" // Default US NYSE
	for suffix, m := range micBySuffix {
		if strings.HasSuffix(symbol, suffix) {
			mic = m
			break
		}
	}

	cal := calendar.GetCalendar(mic)
	if cal == nil {
		cal = calendar.GetCalendar("xnys")
	}
	if cal == nil {
		nyLoc, _ := time.LoadLocation("America/New_York")
		if nyLoc == nil {
			nyLoc = time.UTC
		}
		return &TradingCalendar{Venue: mic, Fallback: true, Timezone: nyLoc}
	}

	return &TradingCalendar{Calendar: cal, Venue: mic, Timezone: cal.Loc}
}

// -----------------------------------------------------------------------------

// isForexSymbol recognizes the bare currency-pair shape used by trading
// terminals (EURUSD, GBPJPY). Anything with a dot or the wrong length is
// treated as a listed instrument.
func isForexSymbol(symbol string) bool {
	if len(symbol) != 6 || strings.Contains(symbol, ".") {
		return false
	}
	for _, r := range symbol {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// -----------------------------------------------------------------------------

// IsOpen reports whether the symbol's market trades at time t.
func (tc *TradingCalendar) IsOpen(t time.Time) bool {
	if tc.Timezone != nil {
		t = t.In(tc.Timezone)
	}

	if tc.Forex {
		return forexOpen(t)
	}

	if tc.Fallback {
		weekday := t.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			return false
		}

		hour := t.Hour()
		minute := t.Minute()

		// 9:30 - 16:00 NY Time
		return (hour > 9 || (hour == 9 && minute >= 30)) && hour < 16
	}

	return tc.Calendar.IsOpen(t)
}

// -----------------------------------------------------------------------------

// forexOpen implements the continuous session: open from Sunday 22:00 UTC
// until Friday 22:00 UTC.
func forexOpen(t time.Time) bool {
	t = t.UTC()

	switch t.Weekday() {
	case time.Saturday:
		return false
	case time.Sunday:
		return t.Hour() >= 22
	case time.Friday:
		return t.Hour() < 22
	default:
		return true
	}
}
