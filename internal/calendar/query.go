package calendar

import (
	"sort"

	"github.com/matiu2/forex-factory-calendar-mcp/internal/model"
)

// Filter returns the events matching q in chronological order. The sort is
// stable, so events sharing an instant keep the order they were parsed in.
func Filter(events []model.EconomicEvent, q model.EventQuery) []model.EconomicEvent {
	out := make([]model.EconomicEvent, 0, len(events))
	for _, e := range events {
		if q.Matches(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].When.Before(out[j].When)
	})
	return out
}
