package model

import (
	"fmt"
	"strings"
)

// Impact is the expected market impact of an economic event. Forex Factory
// renders it as a colored icon: yellow (low), orange (medium), red (high).
// The numeric values double as the 1-3 star rating, so levels order
// naturally with <.
type Impact int

const (
	ImpactLow Impact = iota + 1
	ImpactMedium
	ImpactHigh
)

// String returns the lowercase level name used in tool responses.
func (i Impact) String() string {
	switch i {
	case ImpactLow:
		return "low"
	case ImpactMedium:
		return "medium"
	case ImpactHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Stars returns the 1-3 star rating for the level.
func (i Impact) Stars() int {
	return int(i)
}

// ImpactFromStars converts a 1-3 star rating back to a level.
func ImpactFromStars(stars int) (Impact, bool) {
	if stars < 1 || stars > 3 {
		return 0, false
	}
	return Impact(stars), true
}

// ClassifyImpact maps a raw impact token onto a canonical level. It accepts
// level names, star counts ("1".."3") and Forex Factory icon class names
// such as "icon icon--ff-impact-ora". Unrecognized tokens classify as Low:
// a missing or novel icon never invalidates the row it came from.
func ClassifyImpact(token string) Impact {
	t := strings.ToLower(strings.TrimSpace(token))

	switch t {
	case "low", "1":
		return ImpactLow
	case "medium", "med", "2":
		return ImpactMedium
	case "high", "3":
		return ImpactHigh
	}

	// Icon class names encode the level as a color fragment.
	switch {
	case strings.Contains(t, "yel"):
		return ImpactLow
	case strings.Contains(t, "ora"):
		return ImpactMedium
	case strings.Contains(t, "red"):
		return ImpactHigh
	}

	return ImpactLow
}

// ParseMinImpact parses a caller-supplied minimum-impact token. Unlike
// ClassifyImpact it rejects unknown tokens, because a mistyped filter should
// fail the request rather than silently match everything.
func ParseMinImpact(s string) (Impact, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "1":
		return ImpactLow, nil
	case "medium", "med", "2":
		return ImpactMedium, nil
	case "high", "3":
		return ImpactHigh, nil
	}
	return 0, fmt.Errorf("unknown impact level %q (want low, medium, high or 1-3)", s)
}
