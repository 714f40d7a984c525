package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/matiu2/forex-factory-calendar-mcp/internal/calendar"
	"github.com/matiu2/forex-factory-calendar-mcp/internal/config"
	appLog "github.com/matiu2/forex-factory-calendar-mcp/internal/log"
	"github.com/matiu2/forex-factory-calendar-mcp/internal/mcpserver"
)

const version = "0.1.0"

// flagConfig holds CLI flag values.
type flagConfig struct {
	configPath string
	digest     bool
	verbose    bool
}

func main() {
	appLog.Info("ffcal starting", "version", version)

	flags := parseFlags()
	if flags.verbose {
		appLog.SetLevel(appLog.LevelDebug)
	}

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}

	appLog.Info("effective config",
		"source_timezone", conf.SourceTimezone,
		"local_timezone", conf.LocalTimezone,
		"fetcher", conf.Fetcher,
		"base_url", conf.BaseURL,
		"fetch_timeout_seconds", conf.FetchTimeoutSeconds,
		"digest", flags.digest,
	)

	// Root context with cancellation on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	src, err := conf.SourceLocation()
	if err != nil {
		appLog.Error("invalid source timezone", err, "source_timezone", conf.SourceTimezone)
		os.Exit(1)
	}
	local, err := conf.LocalLocation()
	if err != nil {
		appLog.Error("invalid local timezone", err, "local_timezone", conf.LocalTimezone)
		os.Exit(1)
	}

	svc := calendar.NewService(buildFetcher(conf), src, local)

	if flags.digest {
		runDigest(ctx, svc, conf)
		return
	}

	srv := mcpserver.New(svc, version)
	appLog.Info("serving MCP on stdio")
	if err := server.NewStdioServer(srv).Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		appLog.Error("stdio server failed", err)
		os.Exit(1)
	}

	appLog.Info("ffcal exiting")
}

func buildFetcher(conf *config.Config) calendar.Fetcher {
	if conf.Fetcher == "browser" {
		return calendar.NewBrowserFetcher(conf.BaseURL, conf.FetchTimeout())
	}
	return calendar.NewHTTPFetcher(conf.BaseURL, conf.UserAgent, conf.FetchTimeout())
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", defaultConfigPath(), "Path to config file")
	flag.BoolVar(&cfg.digest, "digest", false, "Run periodic event digests instead of serving MCP")
	flag.BoolVar(&cfg.verbose, "verbose", false, "Enable debug logging")

	flag.Parse()

	return cfg
}

func defaultConfigPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home + "/.config/ffcal/config.yaml"
	}
	return "/etc/ffcal/config.yaml"
}
