package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alejandrodnm/tradecheck/internal/adapters/notify"
	"github.com/alejandrodnm/tradecheck/internal/application/checklist"
	"github.com/alejandrodnm/tradecheck/internal/domain"
)

// runScore aplica los toggles pedidos, imprime el resumen de confluencia y,
// con -save, persiste el trade puntuado.
func runScore(ctx context.Context, session *checklist.Session, console *notify.Console, check string, save bool, pnlArg string) {
	checks, err := parseChecks(check)
	if err != nil {
		slog.Error("invalid -check value", "err", err, "check", check)
		os.Exit(1)
	}

	for _, c := range checks {
		if _, _, err := session.Toggle(c[0], c[1]); err != nil {
			// Índice inválido: error de wiring, fatal.
			slog.Error("toggle failed", "err", err)
			os.Exit(1)
		}
	}

	if err := console.ShowSummary(ctx, session.Tiles()); err != nil {
		slog.Error("failed to print summary", "err", err)
		os.Exit(1)
	}

	if !save {
		return
	}

	pnl, err := parsePnL(pnlArg)
	if err != nil {
		slog.Error("invalid -pnl value", "err", err, "pnl", pnlArg)
		os.Exit(1)
	}

	id, err := session.Save(ctx, pnl)
	if err != nil {
		fmt.Println(domain.FriendlyMessage(err))
		slog.Debug("save failed", "err", err)
		os.Exit(1)
	}
	fmt.Printf("Trade saved successfully! (id %s)\n", id)
}

// runDelete borra un trade guardado por id.
func runDelete(ctx context.Context, session *checklist.Session, id string) {
	if err := session.DeleteTrade(ctx, id); err != nil {
		fmt.Println(domain.FriendlyMessage(err))
		os.Exit(1)
	}
	fmt.Printf("Trade %s deleted.\n", id)
}

// parseChecks parsea el formato "tile:item,tile:item" de -check.
func parseChecks(s string) ([][2]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var checks [][2]int
	for _, part := range strings.Split(s, ",") {
		ti, ii, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("parseChecks: %q: want tile:item", part)
		}
		tileIdx, err := strconv.Atoi(ti)
		if err != nil {
			return nil, fmt.Errorf("parseChecks: tile index %q: %w", ti, err)
		}
		itemIdx, err := strconv.Atoi(ii)
		if err != nil {
			return nil, fmt.Errorf("parseChecks: item index %q: %w", ii, err)
		}
		checks = append(checks, [2]int{tileIdx, itemIdx})
	}
	return checks, nil
}

// parsePnL parsea el flag opcional -pnl; vacío significa ausente.
func parsePnL(s string) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("parsePnL: %q: %w", s, err)
	}
	return &v, nil
}
