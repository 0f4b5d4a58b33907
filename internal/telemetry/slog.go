// Package telemetry provides application-level observability for the dashboard
// backend: structured logging setup and Prometheus metrics.
//
// Metrics are registered against the default Prometheus registry and served on a
// side-channel HTTP listener started by cmd/server (default port 9090, configured
// via telemetry.metrics.port). The endpoint is not part of the Gin router, so the
// scrape path stays off the public ingress.
package telemetry

import (
	"log/slog"
	"os"
	"strings"
)

// SetupLogger installs the global slog default logger from the logging
// configuration.
//
// format "json" selects a JSONHandler for machine-readable output; any other
// value selects a TextHandler for local development. level accepts "debug",
// "info", "warn"/"warning", or "error" (case-insensitive) and defaults to info.
// Source locations are attached only at debug level.
//
// Installing the logger as the default means the rest of the application logs
// through plain slog.Info/Warn/Error calls without carrying a *slog.Logger.
func SetupLogger(format, level string) {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
	slog.Info("logger initialised", "format", format, "level", lvl.String())
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
