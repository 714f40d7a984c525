// Package mcpserver exposes the calendar pipeline as MCP tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/matiu2/forex-factory-calendar-mcp/internal/calendar"
	"github.com/matiu2/forex-factory-calendar-mcp/internal/export"
	appLog "github.com/matiu2/forex-factory-calendar-mcp/internal/log"
	"github.com/matiu2/forex-factory-calendar-mcp/internal/model"
)

// eventResult is the serialized event record returned by every tool.
type eventResult struct {
	Name        string  `json:"name"`
	Currency    string  `json:"currency"`
	Impact      string  `json:"impact"`
	ImpactStars int     `json:"impact_stars"`
	Datetime    string  `json:"datetime"`
	Actual      *string `json:"actual,omitempty"`
	Forecast    *string `json:"forecast,omitempty"`
	Previous    *string `json:"previous,omitempty"`
}

func toResult(e model.EconomicEvent) eventResult {
	return eventResult{
		Name:        e.Name,
		Currency:    e.Currency,
		Impact:      e.Impact.String(),
		ImpactStars: e.Impact.Stars(),
		Datetime:    e.When.Format(time.RFC3339),
		Actual:      e.Actual,
		Forecast:    e.Forecast,
		Previous:    e.Previous,
	}
}

const instructions = "Query economic events from the Forex Factory calendar. " +
	"Use query_events for filtered queries, get_week_around for date-centered " +
	"queries, get_today_events/get_week_events for quick access to current " +
	"events, and export_events_ics to export a query as an iCalendar file."

// New builds the MCP server exposing the four query tools and the ICS
// export. Each tool call triggers one full fetch + parse + normalize pass.
func New(svc *calendar.Service, version string) *server.MCPServer {
	s := server.NewMCPServer("forex-factory-calendar", version,
		server.WithToolCapabilities(false),
		server.WithInstructions(instructions),
	)

	s.AddTool(mcp.NewTool("get_today_events",
		mcp.WithDescription("Get all economic events scheduled for today."),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		events, err := svc.Today(ctx)
		if err != nil {
			appLog.Error("get_today_events failed", err)
			return mcp.NewToolResultError("failed to get today's events: " + err.Error()), nil
		}
		return resultJSON(events)
	})

	s.AddTool(mcp.NewTool("get_week_events",
		mcp.WithDescription("Get all economic events scheduled for the seven days starting today."),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		events, err := svc.Week(ctx)
		if err != nil {
			appLog.Error("get_week_events failed", err)
			return mcp.NewToolResultError("failed to get week events: " + err.Error()), nil
		}
		return resultJSON(events)
	})

	s.AddTool(mcp.NewTool("get_week_around",
		mcp.WithDescription("Get economic events for the week around a specific date. "+
			"Returns events 3 days before and after the specified date."),
		mcp.WithString("date", mcp.Required(),
			mcp.Description("Center date in YYYY-MM-DD format.")),
		mcp.WithString("currencies",
			mcp.Description("Currency pair, single currency, or comma-separated list (optional). "+
				"Codes, country names and currency names are accepted.")),
		mcp.WithString("min_impact",
			mcp.Description("Minimum impact level: low, medium, high or 1-3 (optional).")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dateStr, err := req.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		date, err := time.Parse(model.DateLayout, dateStr)
		if err != nil {
			return mcp.NewToolResultError("date: invalid date " + dateStr + " (want YYYY-MM-DD)"), nil
		}

		q, err := queryFromRequest(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		events, err := svc.WeekAround(ctx, date, q)
		if err != nil {
			appLog.Error("get_week_around failed", err, "date", dateStr)
			return mcp.NewToolResultError("failed to get week events: " + err.Error()), nil
		}
		return resultJSON(events)
	})

	s.AddTool(mcp.NewTool("query_events",
		mcp.WithDescription("Query economic events from the Forex Factory calendar. "+
			"Supports filtering by currency (e.g. 'USD', 'AUD/CHF', 'euro,Canada'), "+
			"date range (YYYY-MM-DD) and minimum impact level ('low', 'medium', 'high' or 1-3)."),
		mcp.WithString("currencies",
			mcp.Description("Currency pair, single currency, or comma-separated list. "+
				"Codes, country names and currency names are accepted.")),
		mcp.WithString("from_date", mcp.Description("Start date in YYYY-MM-DD format.")),
		mcp.WithString("to_date", mcp.Description("End date in YYYY-MM-DD format.")),
		mcp.WithString("min_impact", mcp.Description("Minimum impact level: low, medium, high or 1-3.")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q, err := queryFromRequest(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		events, err := svc.Query(ctx, q)
		if err != nil {
			appLog.Error("query_events failed", err)
			return mcp.NewToolResultError("query failed: " + err.Error()), nil
		}
		return resultJSON(events)
	})

	s.AddTool(mcp.NewTool("export_events_ics",
		mcp.WithDescription("Export economic events matching a query as an iCalendar (ICS) "+
			"document. Accepts the same filters as query_events."),
		mcp.WithString("currencies",
			mcp.Description("Currency pair, single currency, or comma-separated list.")),
		mcp.WithString("from_date", mcp.Description("Start date in YYYY-MM-DD format.")),
		mcp.WithString("to_date", mcp.Description("End date in YYYY-MM-DD format.")),
		mcp.WithString("min_impact", mcp.Description("Minimum impact level: low, medium, high or 1-3.")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q, err := queryFromRequest(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		events, err := svc.Query(ctx, q)
		if err != nil {
			appLog.Error("export_events_ics failed", err)
			return mcp.NewToolResultError("export failed: " + err.Error()), nil
		}
		return mcp.NewToolResultText(export.ICS(events)), nil
	})

	return s
}

func resultJSON(events []model.EconomicEvent) (*mcp.CallToolResult, error) {
	results := make([]eventResult, 0, len(events))
	for _, e := range events {
		results = append(results, toResult(e))
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
