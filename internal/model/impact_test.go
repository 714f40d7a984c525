package model

import "testing"

func TestClassifyImpactTokens(t *testing.T) {
	cases := []struct {
		token string
		want  Impact
	}{
		{"low", ImpactLow},
		{"LOW", ImpactLow},
		{"1", ImpactLow},
		{"medium", ImpactMedium},
		{"med", ImpactMedium},
		{"2", ImpactMedium},
		{"high", ImpactHigh},
		{"3", ImpactHigh},
		{"icon icon--ff-impact-yel", ImpactLow},
		{"icon icon--ff-impact-ora", ImpactMedium},
		{"icon icon--ff-impact-red", ImpactHigh},
		{"yellow", ImpactLow},
		{"orange", ImpactMedium},
	}
	for _, c := range cases {
		if got := ClassifyImpact(c.token); got != c.want {
			t.Fatalf("ClassifyImpact(%q) = %v, want %v", c.token, got, c.want)
		}
	}
}

func TestClassifyImpactUnknownIsLow(t *testing.T) {
	for _, token := range []string{"", "  ", "icon--ff-impact-gra", "holiday", "4", "0"} {
		if got := ClassifyImpact(token); got != ImpactLow {
			t.Fatalf("ClassifyImpact(%q) = %v, want ImpactLow", token, got)
		}
	}
}

// Round-tripping any valid token through the star rating must be stable.
func TestClassifyStarsRoundTrip(t *testing.T) {
	tokens := []string{
		"low", "1", "icon icon--ff-impact-yel",
		"medium", "med", "2", "icon icon--ff-impact-ora",
		"high", "3", "icon icon--ff-impact-red",
	}
	for _, token := range tokens {
		level := ClassifyImpact(token)
		back, ok := ImpactFromStars(level.Stars())
		if !ok || back != level {
			t.Fatalf("token %q: round trip gave (%v, %v), want (%v, true)", token, back, ok, level)
		}
	}
}

func TestImpactStars(t *testing.T) {
	if ImpactLow.Stars() != 1 || ImpactMedium.Stars() != 2 || ImpactHigh.Stars() != 3 {
		t.Fatalf("stars mapping wrong: %d %d %d",
			ImpactLow.Stars(), ImpactMedium.Stars(), ImpactHigh.Stars())
	}
	for _, n := range []int{0, 4, -1} {
		if _, ok := ImpactFromStars(n); ok {
			t.Fatalf("ImpactFromStars(%d) accepted invalid rating", n)
		}
	}
}

func TestImpactOrdering(t *testing.T) {
	if !(ImpactLow < ImpactMedium && ImpactMedium < ImpactHigh) {
		t.Fatal("impact levels must order Low < Medium < High")
	}
}

func TestImpactString(t *testing.T) {
	cases := map[Impact]string{
		ImpactLow:    "low",
		ImpactMedium: "medium",
		ImpactHigh:   "high",
		Impact(0):    "unknown",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Fatalf("Impact(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestParseMinImpact(t *testing.T) {
	for token, want := range map[string]Impact{
		"low": ImpactLow, "Medium": ImpactMedium, "MED": ImpactMedium,
		"high": ImpactHigh, "1": ImpactLow, "2": ImpactMedium, "3": ImpactHigh,
	} {
		got, err := ParseMinImpact(token)
		if err != nil {
			t.Fatalf("ParseMinImpact(%q): unexpected error: %v", token, err)
		}
		if got != want {
			t.Fatalf("ParseMinImpact(%q) = %v, want %v", token, got, want)
		}
	}

	for _, token := range []string{"", "huge", "4", "0", "stars"} {
		if _, err := ParseMinImpact(token); err == nil {
			t.Fatalf("ParseMinImpact(%q): want error, got nil", token)
		}
	}
}
