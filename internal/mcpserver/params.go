package mcpserver

import (
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/matiu2/forex-factory-calendar-mcp/internal/currency"
	"github.com/matiu2/forex-factory-calendar-mcp/internal/model"
)

// queryFromRequest validates the filter arguments shared by query_events and
// export_events_ics and builds the event filter. Validation failures abort
// the call before any fetch happens. A from_date without a to_date means a
// single-day range.
func queryFromRequest(req mcp.CallToolRequest) (model.EventQuery, error) {
	var q model.EventQuery
	var err error

	if q.Currencies, err = parseCurrencies(req.GetString("currencies", "")); err != nil {
		return q, err
	}
	if q.FromDate, err = parseDate("from_date", req.GetString("from_date", "")); err != nil {
		return q, err
	}
	if q.ToDate, err = parseDate("to_date", req.GetString("to_date", "")); err != nil {
		return q, err
	}
	if q.FromDate != "" && q.ToDate == "" {
		q.ToDate = q.FromDate
	}
	if s := req.GetString("min_impact", ""); s != "" {
		if q.MinImpact, err = model.ParseMinImpact(s); err != nil {
			return q, fmt.Errorf("min_impact: %w", err)
		}
	}
	return q, nil
}

// parseCurrencies splits a pair or list token ("AUD/CHF", "EUR,GBP",
// "euro, Canada") and resolves every element through the alias table. The
// result is OR-matched by the query engine.
func parseCurrencies(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == ',' || r == '-' || r == '_'
	})

	codes := make([]string, 0, len(parts))
	for _, tok := range parts {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		code, err := currency.Resolve(tok)
		if err != nil {
			return nil, fmt.Errorf("currencies: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// parseDate validates a YYYY-MM-DD parameter and returns it in canonical
// form. Empty input stays empty (unconstrained).
func parseDate(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%s: invalid date %q (want YYYY-MM-DD)", field, s)
	}
	return t.Format(model.DateLayout), nil
}
