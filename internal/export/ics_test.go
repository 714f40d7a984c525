package export

import (
	"strings"
	"testing"
	"time"

	"github.com/matiu2/forex-factory-calendar-mcp/internal/model"
)

func TestICS(t *testing.T) {
	forecast := "0.2%"
	events := []model.EconomicEvent{
		{
			Name:     "Core CPI m/m",
			Currency: "USD",
			Impact:   model.ImpactHigh,
			When:     time.Date(2026, time.January, 15, 13, 30, 0, 0, time.UTC),
			Forecast: &forecast,
		},
		{
			Name:     "German ZEW",
			Currency: "EUR",
			Impact:   model.ImpactMedium,
			When:     time.Date(2026, time.January, 16, 10, 0, 0, 0, time.UTC),
		},
	}

	out := ICS(events)

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatal("missing VCALENDAR envelope")
	}
	if n := strings.Count(out, "BEGIN:VEVENT"); n != 2 {
		t.Fatalf("expected 2 VEVENTs, got %d", n)
	}
	if !strings.Contains(out, "SUMMARY:[USD] Core CPI m/m") {
		t.Fatal("missing USD event summary")
	}
	if !strings.Contains(out, "SUMMARY:[EUR] German ZEW") {
		t.Fatal("missing EUR event summary")
	}
	if !strings.Contains(out, "Forecast: 0.2%") {
		t.Fatal("forecast missing from description")
	}
	if !strings.Contains(out, "DTSTART:20260115T133000Z") {
		t.Fatal("wrong or missing DTSTART")
	}
}

func TestICSEmpty(t *testing.T) {
	out := ICS(nil)
	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Fatal("empty export must still be a valid calendar")
	}
	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Fatal("empty export must contain no events")
	}
}
