// Package export renders query results in interchange formats.
package export

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/matiu2/forex-factory-calendar-mcp/internal/model"
)

// eventDuration is the block reserved per calendar entry. Releases are
// instantaneous; a half-hour block keeps them visible in calendar UIs.
const eventDuration = 30 * time.Minute

// ICS serializes events as a VCALENDAR so callers can import them into a
// calendar application. Events are expected to be pre-filtered and sorted.
func ICS(events []model.EconomicEvent) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//forex-factory-calendar-mcp//EN")

	stamp := time.Now().UTC()
	for i, e := range events {
		uid := fmt.Sprintf("%s-%d-%s@forex-factory-calendar-mcp",
			e.When.UTC().Format("20060102T150405Z"), i, e.Currency)

		ev := cal.AddEvent(uid)
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(e.When)
		ev.SetEndAt(e.When.Add(eventDuration))
		ev.SetSummary(fmt.Sprintf("[%s] %s", e.Currency, e.Name))
		ev.SetDescription(describe(e))
	}

	return cal.Serialize()
}

func describe(e model.EconomicEvent) string {
	desc := "Impact: " + e.Impact.String()
	if e.Forecast != nil {
		desc += " | Forecast: " + *e.Forecast
	}
	if e.Previous != nil {
		desc += " | Previous: " + *e.Previous
	}
	if e.Actual != nil {
		desc += " | Actual: " + *e.Actual
	}
	return desc
}
