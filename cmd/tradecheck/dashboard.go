package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alejandrodnm/tradecheck/internal/adapters/notify"
	"github.com/alejandrodnm/tradecheck/internal/application/dashboard"
)

// runHistory imprime el histórico de trades del usuario.
func runHistory(ctx context.Context, svc *dashboard.Service, console *notify.Console, userID string) {
	records, err := svc.Records(ctx, userID)
	if err != nil {
		slog.Error("failed to load trades", "err", err)
		os.Exit(1)
	}
	if err := console.ShowHistory(ctx, records); err != nil {
		slog.Error("failed to print history", "err", err)
		os.Exit(1)
	}
}

// runDashboard imprime la serie temporal, la frecuencia de tiles y las
// quick stats. Sin usuario configurado usa el histórico completo.
func runDashboard(ctx context.Context, svc *dashboard.Service, console *notify.Console, userID string) {
	records, err := svc.Records(ctx, userID)
	if err != nil {
		slog.Error("failed to load trades", "err", err)
		os.Exit(1)
	}
	if err := console.ShowDashboard(ctx, records); err != nil {
		slog.Error("failed to print dashboard", "err", err)
		os.Exit(1)
	}
}
