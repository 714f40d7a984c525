package model

import (
	"strings"
	"time"
)

// DateLayout is the calendar-day format used by query bounds and tool
// parameters.
const DateLayout = "2006-01-02"

// EconomicEvent is one scheduled calendar entry after normalization. The
// currency is always a canonical ISO 4217 code, the impact one of the three
// canonical levels, and When carries the caller's local offset.
type EconomicEvent struct {
	Name     string
	Currency string
	Impact   Impact
	When     time.Time

	// Actual, Forecast and Previous are opaque display strings copied from
	// the calendar page. nil means the cell was absent.
	Actual   *string
	Forecast *string
	Previous *string
}

// EventQuery filters a normalized event sequence. Zero values are
// unconstrained: an empty Currencies set matches every currency, empty date
// bounds leave that side of the range open, and a zero MinImpact disables
// the floor.
type EventQuery struct {
	// Currencies holds canonical codes and is OR-matched, so a pair like
	// AUD/CHF returns events for either currency.
	Currencies []string

	// FromDate and ToDate bound the event's local calendar day, inclusive,
	// in DateLayout form.
	FromDate string
	ToDate   string

	MinImpact Impact
}

// Matches reports whether e satisfies every constraint in q. Date bounds are
// evaluated against the calendar day of e.When in its own zone, which is the
// caller's local zone after normalization.
func (q EventQuery) Matches(e EconomicEvent) bool {
	if len(q.Currencies) > 0 && !q.matchesCurrency(e.Currency) {
		return false
	}
	if q.MinImpact != 0 && e.Impact < q.MinImpact {
		return false
	}
	day := e.When.Format(DateLayout)
	if q.FromDate != "" && day < q.FromDate {
		return false
	}
	if q.ToDate != "" && day > q.ToDate {
		return false
	}
	return true
}

func (q EventQuery) matchesCurrency(code string) bool {
	for _, c := range q.Currencies {
		if strings.EqualFold(c, code) {
			return true
		}
	}
	return false
}
