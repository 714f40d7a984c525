package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	appLog "github.com/matiu2/forex-factory-calendar-mcp/internal/log"
)

// BrowserFetcher retrieves the calendar page through headless Chrome. The
// real browser passes the site's JavaScript bot checks that the plain HTTP
// path cannot. Each fetch runs in a fresh browser context, so fetchers are
// safe for concurrent use and no session state leaks between tool calls.
type BrowserFetcher struct {
	baseURL string
	timeout time.Duration
}

// NewBrowserFetcher creates a headless-Chrome fetcher against the given site
// root. Chrome itself is launched lazily on the first fetch.
func NewBrowserFetcher(baseURL string, timeout time.Duration) *BrowserFetcher {
	return &BrowserFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

func (f *BrowserFetcher) FetchToday(ctx context.Context) (string, error) {
	return f.fetchURL(ctx, f.baseURL+"/calendar?day=today")
}

func (f *BrowserFetcher) FetchThisWeek(ctx context.Context) (string, error) {
	return f.fetchURL(ctx, f.baseURL+"/calendar?week=this")
}

func (f *BrowserFetcher) FetchWeek(ctx context.Context, date time.Time) (string, error) {
	return f.fetchURL(ctx, f.baseURL+"/calendar?week="+weekParam(date))
}

func (f *BrowserFetcher) fetchURL(parentCtx context.Context, url string) (string, error) {
	appLog.Info("browser fetch start", "url", url)

	ctx, cancel := chromedp.NewContext(parentCtx)
	defer cancel()

	ctx, timeoutCancel := context.WithTimeout(ctx, f.timeout)
	defer timeoutCancel()

	var html string
	tasks := chromedp.Tasks{
		chromedp.Navigate(url),
		// Waiting for the table covers both page load and any interstitial
		// challenge the browser solves on its own.
		chromedp.WaitVisible("table.calendar__table", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	}

	if err := chromedp.Run(ctx, tasks); err != nil {
		return "", fmt.Errorf("browser fetch %s: %w", url, err)
	}

	appLog.Info("browser fetch success", "url", url, "bytes", len(html))
	return html, nil
}
