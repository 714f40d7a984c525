// Package currency resolves caller-supplied currency tokens to canonical
// ISO 4217 codes. A token may be a code ("usd"), a country name ("Canada"),
// a demonym ("Canadian") or a currency name ("euro").
package currency

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned when a token matches no alias and does not look
// like a currency code.
var ErrUnknown = errors.New("unknown currency")

// aliases maps lowercase tokens to canonical codes. Every canonical code is
// mapped to itself so resolution is idempotent.
var aliases = map[string]string{
	// USD - United States Dollar
	"usd":           "USD",
	"united states": "USD",
	"usa":           "USD",
	"us":            "USD",
	"america":       "USD",
	"american":      "USD",
	"greenback":     "USD",

	// EUR - Euro
	"eur":      "EUR",
	"euro":     "EUR",
	"eurozone": "EUR",
	"europe":   "EUR",
	"european": "EUR",

	// GBP - British Pound
	"gbp":            "GBP",
	"united kingdom": "GBP",
	"uk":             "GBP",
	"britain":        "GBP",
	"british":        "GBP",
	"england":        "GBP",
	"english":        "GBP",
	"pound":          "GBP",
	"sterling":       "GBP",

	// JPY - Japanese Yen
	"jpy":      "JPY",
	"japan":    "JPY",
	"japanese": "JPY",
	"yen":      "JPY",

	// AUD - Australian Dollar
	"aud":        "AUD",
	"australia":  "AUD",
	"australian": "AUD",
	"aussie":     "AUD",

	// CAD - Canadian Dollar
	"cad":      "CAD",
	"canada":   "CAD",
	"canadian": "CAD",
	"loonie":   "CAD",

	// CHF - Swiss Franc
	"chf":         "CHF",
	"switzerland": "CHF",
	"swiss":       "CHF",
	"franc":       "CHF",

	// NZD - New Zealand Dollar
	"nzd":         "NZD",
	"new zealand": "NZD",
	"kiwi":        "NZD",

	// CNY - Chinese Yuan (CNH trades as the offshore variant)
	"cny":     "CNY",
	"cnh":     "CNY",
	"china":   "CNY",
	"chinese": "CNY",
	"yuan":    "CNY",
}

// Resolve maps a token to its canonical currency code. Lookup is trimmed and
// case-insensitive. Tokens that already look like an ISO code but are
// missing from the table pass through upper-cased, so a newly listed
// currency does not break queries; anything else fails with ErrUnknown.
func Resolve(token string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return "", fmt.Errorf("%w: empty token", ErrUnknown)
	}
	if code, ok := aliases[t]; ok {
		return code, nil
	}
	if looksLikeCode(t) {
		return strings.ToUpper(t), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknown, token)
}

// looksLikeCode reports whether a lowercased token has the 3-letter shape of
// an ISO 4217 code.
func looksLikeCode(t string) bool {
	if len(t) != 3 {
		return false
	}
	for _, r := range t {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
