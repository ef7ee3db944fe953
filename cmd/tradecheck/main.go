package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/tradecheck/config"
	"github.com/alejandrodnm/tradecheck/internal/adapters/notify"
	"github.com/alejandrodnm/tradecheck/internal/adapters/storage"
	"github.com/alejandrodnm/tradecheck/internal/application/checklist"
	"github.com/alejandrodnm/tradecheck/internal/application/dashboard"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	user := flag.String("user", "", "user id (overrides config)")
	check := flag.String("check", "", "items to check, e.g. \"0:0,0:1,2:3\" (tile:item)")
	save := flag.Bool("save", false, "persist the scored trade")
	pnl := flag.String("pnl", "", "optional realized P&L for the saved trade")
	history := flag.Bool("history", false, "print saved trades and exit")
	dash := flag.Bool("dashboard", false, "print performance analytics and exit")
	deleteID := flag.String("delete", "", "delete the trade with this id and exit")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *user != "" {
		cfg.User = *user
	}
	setupLogger(cfg.Log)

	store, err := storage.NewSQLiteStorage(cfg.Storage.DSN)
	if err != nil {
		slog.Error("failed to open storage", "err", err, "dsn", cfg.Storage.DSN)
		os.Exit(1)
	}
	defer store.Close()

	console := notify.NewConsole()
	session := checklist.NewSession(cfg.User, cfg.Tiles(), store)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch {
	case *deleteID != "":
		runDelete(ctx, session, *deleteID)
	case *history:
		runHistory(ctx, dashboard.New(store), console, cfg.User)
	case *dash:
		runDashboard(ctx, dashboard.New(store), console, cfg.User)
	default:
		runScore(ctx, session, console, *check, *save, *pnl)
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
