package calendar

import (
	"context"
	"time"

	appLog "github.com/matiu2/forex-factory-calendar-mcp/internal/log"
	"github.com/matiu2/forex-factory-calendar-mcp/internal/model"
)

// Service runs the fetch -> parse -> normalize -> filter pipeline. Every
// operation performs one full fresh pass; nothing is cached or shared
// between invocations, so a Service is safe for concurrent tool calls.
type Service struct {
	fetcher Fetcher
	src     *time.Location
	local   *time.Location
	now     func() time.Time
}

// NewService wires a fetcher to the timezone pair used for normalization:
// src is the zone the page publishes times in, local the zone events are
// converted into (nil means the system zone).
func NewService(fetcher Fetcher, src, local *time.Location) *Service {
	if local == nil {
		local = time.Local
	}
	return &Service{
		fetcher: fetcher,
		src:     src,
		local:   local,
		now:     time.Now,
	}
}

func (s *Service) today() time.Time {
	return s.now().In(s.local)
}

// Today returns events scheduled on the caller's local calendar day.
func (s *Service) Today(ctx context.Context) ([]model.EconomicEvent, error) {
	day := s.today().Format(model.DateLayout)

	payload, err := s.fetcher.FetchToday(ctx)
	if err != nil {
		return nil, err
	}
	return s.run(payload, s.today(), model.EventQuery{FromDate: day, ToDate: day})
}

// Week returns events for the seven days starting today.
func (s *Service) Week(ctx context.Context) ([]model.EconomicEvent, error) {
	today := s.today()
	q := model.EventQuery{
		FromDate: today.Format(model.DateLayout),
		ToDate:   today.AddDate(0, 0, 6).Format(model.DateLayout),
	}

	payload, err := s.fetcher.FetchThisWeek(ctx)
	if err != nil {
		return nil, err
	}
	return s.run(payload, today, q)
}

// WeekAround returns events in the seven-day window centered on date. Any
// currency or impact constraints already present in q are kept; its date
// bounds are overwritten with the window.
func (s *Service) WeekAround(ctx context.Context, date time.Time, q model.EventQuery) ([]model.EconomicEvent, error) {
	q.FromDate = date.AddDate(0, 0, -3).Format(model.DateLayout)
	q.ToDate = date.AddDate(0, 0, 3).Format(model.DateLayout)

	payload, err := s.fetcher.FetchWeek(ctx, date)
	if err != nil {
		return nil, err
	}
	return s.run(payload, date, q)
}

// Query runs a caller-supplied filter. The page is fetched for the week of
// the from date when one is given, for the current week otherwise.
func (s *Service) Query(ctx context.Context, q model.EventQuery) ([]model.EconomicEvent, error) {
	base := s.today()

	var (
		payload string
		err     error
	)
	if q.FromDate != "" {
		if d, perr := time.ParseInLocation(model.DateLayout, q.FromDate, s.local); perr == nil {
			base = d
		}
		payload, err = s.fetcher.FetchWeek(ctx, base)
	} else {
		payload, err = s.fetcher.FetchThisWeek(ctx)
	}
	if err != nil {
		return nil, err
	}
	return s.run(payload, base, q)
}

// run executes the parse + normalize + filter stages of one pass.
func (s *Service) run(payload string, base time.Time, q model.EventQuery) ([]model.EconomicEvent, error) {
	rows, err := parseCalendar(payload, base)
	if err != nil {
		return nil, err
	}

	events := make([]model.EconomicEvent, 0, len(rows))
	for _, r := range rows {
		if e, ok := normalizeRow(r, s.src, s.local); ok {
			events = append(events, e)
		}
	}

	matched := Filter(events, q)
	appLog.Info("calendar pass completed",
		"rows", len(rows),
		"events", len(events),
		"matched", len(matched),
	)
	return matched, nil
}
