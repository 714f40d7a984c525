package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	appLog "github.com/matiu2/forex-factory-calendar-mcp/internal/log"
)

// rawRow is one event row lifted out of the calendar table before
// normalization. The effective date comes from the most recent date header
// cell, not from the row itself.
type rawRow struct {
	year  int
	month time.Month
	day   int

	currency string
	name     string
	impact   string // raw token: icon class name or text
	timeText string

	// Value cells are kept verbatim; empty means the cell was absent.
	actual   string
	forecast string
	previous string
}

// parseCalendar walks the calendar table rows in document order and lifts
// each well-formed event row into a rawRow. A date header cell ("Tue Jan 13")
// applies to every following row until the next header; the page omits
// years, so the base date supplies one. Rows missing a currency, name or
// time are skipped, and rows seen before any date header are dropped because
// their date is unknowable. A bad row never aborts the pass.
func parseCalendar(payload string, base time.Time) ([]rawRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("parse calendar markup: %w", err)
	}

	var rows []rawRow
	var (
		haveDate bool
		year     int
		month    time.Month
		day      int
	)
	skipped := 0

	doc.Find("tr[data-event-id]").Each(func(_ int, tr *goquery.Selection) {
		if text := cellText(tr, "td.calendar__date"); text != "" {
			if m, d, ok := parseHeaderDate(text); ok {
				month, day = m, d
				year = resolveYear(m, base)
				haveDate = true
			}
		}
		if !haveDate {
			skipped++
			return
		}

		row := rawRow{
			year:     year,
			month:    month,
			day:      day,
			currency: cellText(tr, "td.calendar__currency"),
			name:     cellText(tr, "td.calendar__event span.calendar__event-title"),
			timeText: cellText(tr, "td.calendar__time"),
			actual:   cellText(tr, "td.calendar__actual"),
			forecast: cellText(tr, "td.calendar__forecast"),
			previous: cellText(tr, "td.calendar__previous"),
		}
		if class, ok := tr.Find("td.calendar__impact span").First().Attr("class"); ok {
			row.impact = class
		}

		if row.currency == "" || row.name == "" || row.timeText == "" {
			skipped++
			return
		}
		rows = append(rows, row)
	})

	appLog.Debug("calendar parse completed", "rows", len(rows), "skipped", skipped)
	return rows, nil
}

// cellText returns the trimmed text of the first cell matching selector.
func cellText(tr *goquery.Selection, selector string) string {
	return strings.TrimSpace(tr.Find(selector).First().Text())
}

var months = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// parseHeaderDate parses a date header cell. The page renders "Tue Jan 13",
// occasionally with the weekday glued to the month ("TueJan 13").
func parseHeaderDate(text string) (time.Month, int, bool) {
	parts := strings.Fields(text)

	var monthStr, dayStr string
	switch len(parts) {
	case 3:
		monthStr, dayStr = parts[1], parts[2]
	case 2:
		if len(parts[0]) < 6 {
			return 0, 0, false
		}
		monthStr, dayStr = parts[0][3:], parts[1]
	default:
		return 0, 0, false
	}

	month, ok := months[strings.ToLower(monthStr)]
	if !ok {
		return 0, 0, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return 0, 0, false
	}
	return month, day, true
}

// resolveYear picks the year for a parsed month relative to the base date.
// A fetched week can cross New Year in either direction.
func resolveYear(m time.Month, base time.Time) int {
	switch {
	case m == time.January && base.Month() == time.December:
		return base.Year() + 1
	case m == time.December && base.Month() == time.January:
		return base.Year() - 1
	}
	return base.Year()
}
