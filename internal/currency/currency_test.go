package currency

import (
	"errors"
	"testing"
)

func TestResolveCodesPassThrough(t *testing.T) {
	for _, in := range []string{"USD", "usd", "UsD", "  usd  "} {
		got, err := Resolve(in)
		if err != nil {
			t.Fatalf("Resolve(%q): unexpected error: %v", in, err)
		}
		if got != "USD" {
			t.Fatalf("Resolve(%q) = %q, want USD", in, got)
		}
	}
}

func TestResolveAliases(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Canada", "CAD"},
		{"CANADA", "CAD"},
		{"canadian", "CAD"},
		{"United States", "USD"},
		{"american", "USD"},
		{"euro", "EUR"},
		{"Eurozone", "EUR"},
		{"Japan", "JPY"},
		{"yen", "JPY"},
		{"Australia", "AUD"},
		{"swiss", "CHF"},
		{"New Zealand", "NZD"},
		{"kiwi", "NZD"},
		{"cnh", "CNY"},
		{"sterling", "GBP"},
	}
	for _, c := range cases {
		got, err := Resolve(c.in)
		if err != nil {
			t.Fatalf("Resolve(%q): unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Resolve(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// Every alias must resolve to the same code as the code itself.
func TestResolveAliasTableConsistent(t *testing.T) {
	for alias, code := range aliases {
		fromAlias, err := Resolve(alias)
		if err != nil {
			t.Fatalf("Resolve(%q): unexpected error: %v", alias, err)
		}
		fromCode, err := Resolve(code)
		if err != nil {
			t.Fatalf("Resolve(%q): unexpected error: %v", code, err)
		}
		if fromAlias != code || fromCode != code {
			t.Fatalf("alias %q: Resolve(alias)=%q Resolve(code)=%q want %q",
				alias, fromAlias, fromCode, code)
		}
	}
}

func TestResolveUnknownCodeShapeAccepted(t *testing.T) {
	got, err := Resolve("xyz")
	if err != nil {
		t.Fatalf("Resolve(xyz): unexpected error: %v", err)
	}
	if got != "XYZ" {
		t.Fatalf("Resolve(xyz) = %q, want XYZ", got)
	}
}

func TestResolveUnknownRejected(t *testing.T) {
	for _, in := range []string{"", "   ", "notacurrency", "Atlantis", "us dollar bill", "u$d"} {
		if _, err := Resolve(in); !errors.Is(err, ErrUnknown) {
			t.Fatalf("Resolve(%q): want ErrUnknown, got %v", in, err)
		}
	}
}
