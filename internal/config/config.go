package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// SourceTimezone is the IANA zone the calendar page publishes times in.
	// Forex Factory shows US Eastern time to anonymous visitors.
	SourceTimezone string `yaml:"source_timezone" json:"source_timezone"`

	// LocalTimezone is the IANA zone events are converted into before they
	// are returned to the caller. Empty means the system's local zone.
	LocalTimezone string `yaml:"local_timezone" json:"local_timezone"`

	// Fetcher selects how the calendar page is retrieved:
	//   - "http": plain HTTP client with browser-like headers (default)
	//   - "browser": headless Chrome, for when the HTTP path is blocked by
	//     the site's bot checks
	Fetcher string `yaml:"fetcher" json:"fetcher"`

	// BaseURL is the calendar site root.
	BaseURL string `yaml:"base_url" json:"base_url"`

	// UserAgent is sent on plain HTTP fetches.
	UserAgent string `yaml:"user_agent" json:"user_agent"`

	// FetchTimeoutSeconds bounds a single page fetch.
	FetchTimeoutSeconds int `yaml:"fetch_timeout_seconds" json:"fetch_timeout_seconds"`

	// DigestCron is the cron schedule used by -digest mode.
	DigestCron string `yaml:"digest_cron" json:"digest_cron"`

	// DigestMinImpact is the impact floor applied to digest summaries
	// ("low", "medium" or "high").
	DigestMinImpact string `yaml:"digest_min_impact" json:"digest_min_impact"`
}

const (
	defaultSourceTimezone = "America/New_York"
	defaultBaseURL        = "https://www.forexfactory.com"
	defaultUserAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultFetchTimeout   = 30
	defaultDigestCron     = "0 7 * * *"
)

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		SourceTimezone:      defaultSourceTimezone,
		LocalTimezone:       "",
		Fetcher:             "http",
		BaseURL:             defaultBaseURL,
		UserAgent:           defaultUserAgent,
		FetchTimeoutSeconds: defaultFetchTimeout,
		DigestCron:          defaultDigestCron,
		DigestMinImpact:     "high",
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.SourceTimezone == "" {
		c.SourceTimezone = defaultSourceTimezone
	}
	switch c.Fetcher {
	case "http", "browser":
		// ok
	default:
		c.Fetcher = "http"
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.FetchTimeoutSeconds <= 0 {
		c.FetchTimeoutSeconds = defaultFetchTimeout
	}
	if c.DigestCron == "" {
		c.DigestCron = defaultDigestCron
	}
	if c.DigestMinImpact == "" {
		c.DigestMinImpact = "high"
	}
}

// SourceLocation loads the source timezone.
func (c *Config) SourceLocation() (*time.Location, error) {
	return time.LoadLocation(c.SourceTimezone)
}

// LocalLocation loads the configured local timezone, falling back to the
// system zone when none is set.
func (c *Config) LocalLocation() (*time.Location, error) {
	if c.LocalTimezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.LocalTimezone)
}

// FetchTimeout returns the fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist, a default config is written there (0600,
//     parent directory created) and returned.
//   - If the file exists, it is unmarshaled and normalized.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Return cfg with the error so the caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path atomically
// (temp file + rename) with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".ffcal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
