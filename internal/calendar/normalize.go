package calendar

import (
	"strings"
	"time"

	"github.com/matiu2/forex-factory-calendar-mcp/internal/currency"
	appLog "github.com/matiu2/forex-factory-calendar-mcp/internal/log"
	"github.com/matiu2/forex-factory-calendar-mcp/internal/model"
)

// normalizeRow builds a typed event from a raw row, or reports false when
// the row must be dropped. The time token is interpreted on the row's
// effective date in the source zone and then converted to the local zone.
// Both zones resolve their UTC offset for that specific date, so daylight
// saving transitions on either side land on the correct instant.
func normalizeRow(r rawRow, src, local *time.Location) (model.EconomicEvent, bool) {
	code, err := currency.Resolve(r.currency)
	if err != nil {
		appLog.Debug("dropping row with unresolvable currency", "currency", r.currency, "event", r.name)
		return model.EconomicEvent{}, false
	}

	hour, min, ok := parseClock(r.timeText)
	if !ok {
		appLog.Debug("dropping row with unparseable time", "time", r.timeText, "event", r.name)
		return model.EconomicEvent{}, false
	}

	when := time.Date(r.year, r.month, r.day, hour, min, 0, 0, src).In(local)

	return model.EconomicEvent{
		Name:     r.name,
		Currency: code,
		Impact:   model.ClassifyImpact(r.impact),
		When:     when,
		Actual:   optional(r.actual),
		Forecast: optional(r.forecast),
		Previous: optional(r.previous),
	}, true
}

// parseClock handles the page's time formats: "8:30am", "2:00pm", "14:00".
// "All Day" and "Tentative" rows count as midnight on their date.
func parseClock(s string) (hour, min int, ok bool) {
	t := strings.ToLower(strings.TrimSpace(s))

	switch t {
	case "all day", "tentative":
		return 0, 0, true
	}

	for _, layout := range []string{"3:04pm", "15:04"} {
		if parsed, err := time.Parse(layout, t); err == nil {
			return parsed.Hour(), parsed.Minute(), true
		}
	}
	return 0, 0, false
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
