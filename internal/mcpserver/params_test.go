package mcpserver

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/matiu2/forex-factory-calendar-mcp/internal/model"
)

func request(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = "query_events"
	req.Params.Arguments = args
	return req
}

func TestParseCurrencies(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"AUD/CHF", []string{"AUD", "CHF"}},
		{"EUR,GBP,USD", []string{"EUR", "GBP", "USD"}},
		{"eur-usd", []string{"EUR", "USD"}},
		{"gbp_jpy", []string{"GBP", "JPY"}},
		{"euro, Canada", []string{"EUR", "CAD"}},
		{"United States", []string{"USD"}},
		{"", nil},
		{"   ", nil},
	}
	for _, c := range cases {
		got, err := parseCurrencies(c.in)
		if err != nil {
			t.Fatalf("parseCurrencies(%q): unexpected error: %v", c.in, err)
		}
		if len(got) != len(c.want) {
			t.Fatalf("parseCurrencies(%q) = %v, want %v", c.in, got, c.want)
		}
		for i := range c.want {
			if got[i] != c.want[i] {
				t.Fatalf("parseCurrencies(%q) = %v, want %v", c.in, got, c.want)
			}
		}
	}
}

func TestParseCurrenciesUnknownToken(t *testing.T) {
	if _, err := parseCurrencies("USD,Atlantis"); err == nil {
		t.Fatal("expected error for unresolvable currency token")
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("from_date", "2026-01-15")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if got != "2026-01-15" {
		t.Fatalf("parseDate = %q", got)
	}

	if got, err := parseDate("from_date", ""); err != nil || got != "" {
		t.Fatalf("empty date: got (%q, %v)", got, err)
	}

	for _, in := range []string{"15-01-2026", "2026/01/15", "tomorrow", "2026-13-40"} {
		if _, err := parseDate("from_date", in); err == nil {
			t.Fatalf("parseDate(%q): want error, got nil", in)
		}
	}
}

func TestQueryFromRequest(t *testing.T) {
	q, err := queryFromRequest(request(map[string]any{
		"currencies": "AUD/CHF",
		"from_date":  "2026-01-12",
		"to_date":    "2026-01-18",
		"min_impact": "medium",
	}))
	if err != nil {
		t.Fatalf("queryFromRequest: %v", err)
	}
	if len(q.Currencies) != 2 || q.Currencies[0] != "AUD" || q.Currencies[1] != "CHF" {
		t.Fatalf("currencies = %v", q.Currencies)
	}
	if q.FromDate != "2026-01-12" || q.ToDate != "2026-01-18" {
		t.Fatalf("dates = %q .. %q", q.FromDate, q.ToDate)
	}
	if q.MinImpact != model.ImpactMedium {
		t.Fatalf("min impact = %v", q.MinImpact)
	}
}

func TestQueryFromRequestSingleDay(t *testing.T) {
	q, err := queryFromRequest(request(map[string]any{"from_date": "2026-01-12"}))
	if err != nil {
		t.Fatalf("queryFromRequest: %v", err)
	}
	if q.ToDate != "2026-01-12" {
		t.Fatalf("missing to_date should collapse to a single day, got %q", q.ToDate)
	}
}

func TestQueryFromRequestUnconstrained(t *testing.T) {
	q, err := queryFromRequest(request(nil))
	if err != nil {
		t.Fatalf("queryFromRequest: %v", err)
	}
	if len(q.Currencies) != 0 || q.FromDate != "" || q.ToDate != "" || q.MinImpact != 0 {
		t.Fatalf("expected unconstrained query, got %+v", q)
	}
}

func TestQueryFromRequestInvalidParams(t *testing.T) {
	cases := []map[string]any{
		{"from_date": "not-a-date"},
		{"to_date": "01/15/2026"},
		{"min_impact": "enormous"},
		{"currencies": "Atlantis"},
	}
	for _, args := range cases {
		if _, err := queryFromRequest(request(args)); err == nil {
			t.Fatalf("args %v: want error, got nil", args)
		}
	}
}
