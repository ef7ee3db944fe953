package notify

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/alejandrodnm/tradecheck/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// Console implementa ports.Notifier escribiendo a un io.Writer.
type Console struct {
	out io.Writer
}

// NewConsole crea un notificador que escribe a stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWriter crea un notificador para tests.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// ShowSummary imprime el resumen de confluencia: una línea por tile y el
// score global con su clasificación.
func (c *Console) ShowSummary(_ context.Context, tiles []domain.Tile) error {
	fmt.Fprintln(c.out, "Confluence Summary")

	for _, t := range tiles {
		if t.Kind == domain.TileRiskFlags {
			sl, tp := t.RiskFlags()
			fmt.Fprintf(c.out, "  %-45s Stop Loss %s  Take Profit %s\n",
				t.Name, checkIcon(sl), checkIcon(tp))
			continue
		}
		score, _ := t.Score()
		fmt.Fprintf(c.out, "  %-45s %.1f%%\n", t.Name, domain.Round1(score))
	}

	overall := domain.ComputeOverall(tiles)
	fmt.Fprintf(c.out, "\n  Overall: %.1f%%\n  %s\n", domain.Round1(overall), domain.Classify(overall))
	return nil
}

// ShowHistory imprime el histórico de trades en una tabla: los records
// llegan del store ya en created_at DESC y se muestran en ese orden.
func (c *Console) ShowHistory(_ context.Context, records []domain.TradeRecord) error {
	if len(records) == 0 {
		fmt.Fprintln(c.out, "No saved trades yet.")
		return nil
	}

	fmt.Fprintf(c.out, "Trade History — %d trades, total P&L $%.2f\n",
		len(records), domain.TotalPnL(records))

	table := tablewriter.NewWriter(c.out)
	table.Header("Date", "Overall", "SL", "TP", "Tiles", "PnL")

	for _, r := range records {
		pnl := "-"
		if r.PnL != nil {
			pnl = fmt.Sprintf("$%.2f", *r.PnL)
		}
		table.Append(
			r.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%.1f%%", domain.Round1(r.Overall)),
			checkIcon(r.StopLoss),
			checkIcon(r.TakeProfit),
			tilesPreview(r.Tiles),
			pnl,
		)
	}

	table.Render()
	return nil
}

// ShowDashboard imprime la frecuencia de tiles, la serie temporal del score
// global y las quick stats.
func (c *Console) ShowDashboard(_ context.Context, records []domain.TradeRecord) error {
	fmt.Fprintln(c.out, "Performance")

	freqs := domain.DeriveTileFrequency(records)
	if len(freqs) == 0 {
		fmt.Fprintln(c.out, "  No trade tiles to summarize yet.")
	} else {
		for _, f := range freqs {
			fmt.Fprintf(c.out, "  %3d%%  %s (%d)\n", f.Percent, f.Name, f.Count)
		}
	}

	labels, values := domain.DeriveSeries(records)
	fmt.Fprintln(c.out, "\nOverall % per trade")
	table := tablewriter.NewWriter(c.out)
	table.Header("Date", "Overall")
	for i, label := range labels {
		table.Append(label, fmt.Sprintf("%.1f", values[i]))
	}
	table.Render()

	c.printQuickStats(domain.DeriveQuickStats(records))
	return nil
}

// printQuickStats imprime win rate, retorno medio y profit factor. Sin
// histórico se muestra el placeholder estático de la página original.
func (c *Console) printQuickStats(stats *domain.QuickStats) {
	fmt.Fprintln(c.out, "\nQuick stats")
	if stats == nil {
		fmt.Fprintln(c.out, "  Win rate:           62%")
		fmt.Fprintln(c.out, "  Avg return / trade: 1.8%")
		fmt.Fprintln(c.out, "  Profit factor:      2.5x")
		return
	}

	fmt.Fprintf(c.out, "  Win rate:           %d%%\n", stats.WinRate)
	fmt.Fprintf(c.out, "  Avg return / trade: %.1f%%\n", domain.Round1(stats.AvgReturn))
	fmt.Fprintf(c.out, "  Profit factor:      %s\n", profitFactorLabel(stats.ProfitFactor))
}

// profitFactorLabel formatea el profit factor; infinito se muestra como "∞"
// (solo ganancias, ninguna pérdida).
func profitFactorLabel(pf float64) string {
	if math.IsInf(pf, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2fx", pf)
}

// tilesPreview resume los tiles de un record en una celda: hasta 6 entradas
// y un sufijo "+N more" si hay más.
func tilesPreview(tiles []domain.RecordTile) string {
	var parts []string
	for i, t := range tiles {
		if i >= 6 {
			parts = append(parts, fmt.Sprintf("+%d more", len(tiles)-6))
			break
		}
		if t.PercentageValue != nil {
			parts = append(parts, fmt.Sprintf("%s: %g%%", t.Name, *t.PercentageValue))
			continue
		}
		sl := t.StopLoss != nil && *t.StopLoss
		tp := t.TakeProfit != nil && *t.TakeProfit
		parts = append(parts, fmt.Sprintf("SL %s TP %s", checkIcon(sl), checkIcon(tp)))
	}
	return strings.Join(parts, " | ")
}

func checkIcon(b bool) string {
	if b {
		return "✓"
	}
	return "×"
}
