package main

import (
	"context"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/matiu2/forex-factory-calendar-mcp/internal/calendar"
	"github.com/matiu2/forex-factory-calendar-mcp/internal/config"
	appLog "github.com/matiu2/forex-factory-calendar-mcp/internal/log"
	"github.com/matiu2/forex-factory-calendar-mcp/internal/model"
)

// digestFetchTimeout bounds one digest pass end to end.
const digestFetchTimeout = 2 * time.Minute

// runDigest fetches the coming week on the configured cron schedule and logs
// a summary of the events at or above the configured impact floor. Each tick
// is a complete fresh pass; digest mode never feeds tool responses.
func runDigest(ctx context.Context, svc *calendar.Service, conf *config.Config) {
	minImpact, err := model.ParseMinImpact(conf.DigestMinImpact)
	if err != nil {
		appLog.Error("invalid digest_min_impact", err, "digest_min_impact", conf.DigestMinImpact)
		os.Exit(1)
	}

	job := func() {
		jobCtx, cancel := context.WithTimeout(ctx, digestFetchTimeout)
		defer cancel()

		events, err := svc.Week(jobCtx)
		if err != nil {
			appLog.Error("digest pass failed", err)
			return
		}

		events = calendar.Filter(events, model.EventQuery{MinImpact: minImpact})
		appLog.Info("event digest", "min_impact", minImpact, "count", len(events))
		for _, e := range events {
			appLog.Info("upcoming event",
				"when", e.When.Format(time.RFC3339),
				"currency", e.Currency,
				"impact", e.Impact,
				"name", e.Name,
			)
		}
	}

	c := cron.New()
	if _, err := c.AddFunc(conf.DigestCron, job); err != nil {
		appLog.Error("invalid digest schedule", err, "digest_cron", conf.DigestCron)
		os.Exit(1)
	}

	appLog.Info("digest mode started", "digest_cron", conf.DigestCron, "min_impact", minImpact)
	job()
	c.Start()

	<-ctx.Done()
	c.Stop()
	appLog.Info("digest mode stopped")
}
