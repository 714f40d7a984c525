package calendar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	appLog "github.com/matiu2/forex-factory-calendar-mcp/internal/log"
)

// Fetcher retrieves the raw calendar page markup. The payload is treated as
// an opaque string by callers; parsing happens downstream.
type Fetcher interface {
	// FetchToday fetches the page for the current day.
	FetchToday(ctx context.Context) (string, error)
	// FetchThisWeek fetches the page for the current week.
	FetchThisWeek(ctx context.Context) (string, error)
	// FetchWeek fetches the page for the week containing date.
	FetchWeek(ctx context.Context, date time.Time) (string, error)
}

// HTTPFetcher fetches the calendar page with a plain HTTP client. Requests
// mimic a desktop browser closely enough for the site's default bot checks;
// when that stops working the browser fetcher is the fallback.
type HTTPFetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewHTTPFetcher creates a fetcher against the given site root. The cookie
// jar keeps any clearance cookies across requests within one process.
func NewHTTPFetcher(baseURL, userAgent string, timeout time.Duration) *HTTPFetcher {
	jar, _ := cookiejar.New(nil)
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

func (f *HTTPFetcher) FetchToday(ctx context.Context) (string, error) {
	return f.fetchURL(ctx, f.baseURL+"/calendar?day=today")
}

func (f *HTTPFetcher) FetchThisWeek(ctx context.Context) (string, error) {
	return f.fetchURL(ctx, f.baseURL+"/calendar?week=this")
}

func (f *HTTPFetcher) FetchWeek(ctx context.Context, date time.Time) (string, error) {
	return f.fetchURL(ctx, f.baseURL+"/calendar?week="+weekParam(date))
}

func (f *HTTPFetcher) fetchURL(ctx context.Context, url string) (string, error) {
	appLog.Info("calendar fetch start", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
	req.Header.Set("Sec-Fetch-User", "?1")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: HTTP %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch %s: read body: %w", url, err)
	}

	payload := string(body)
	if err := validatePayload(payload); err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}

	appLog.Info("calendar fetch success", "url", url, "bytes", len(payload))
	return payload, nil
}

// validatePayload rejects responses that are not a usable calendar page.
func validatePayload(payload string) error {
	if strings.Contains(payload, "Just a moment...") ||
		strings.Contains(payload, "Verifying you are human") {
		return errors.New("blocked by Cloudflare challenge; switch the fetcher to \"browser\"")
	}
	if !strings.Contains(payload, "calendar__table") &&
		!strings.Contains(payload, "calendar_row") {
		return errors.New("calendar table not found in response; the page structure may have changed")
	}
	return nil
}

// weekParam formats a date into the site's week URL parameter,
// e.g. June 4, 2025 -> "jun4.2025".
func weekParam(date time.Time) string {
	month := strings.ToLower(date.Format("Jan"))
	return fmt.Sprintf("%s%d.%d", month, date.Day(), date.Year())
}
