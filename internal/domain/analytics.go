package domain

// analytics.go — derivaciones descriptivas sobre el histórico de trades.
//
// Todo es puro y read-only: se puede recomputar las veces que haga falta
// sobre el mismo snapshot. El store devuelve los records en created_at DESC,
// pero aquí no se asume ningún orden — la serie re-ordena siempre.

import (
	"math"
	"sort"
	"strings"
)

// seriesEmptyLabel es el placeholder cuando no hay datos que graficar.
const seriesEmptyLabel = "No Data"

// DeriveSeries devuelve la serie temporal del score global: labels de fecha
// y valores en paralelo, ordenados por created_at ascendente (orden estable,
// los empates conservan el orden relativo de entrada). Sin records devuelve
// el par placeholder ("No Data", 0) en vez de slices vacíos.
func DeriveSeries(records []TradeRecord) ([]string, []float64) {
	if len(records) == 0 {
		return []string{seriesEmptyLabel}, []float64{0}
	}

	sorted := make([]TradeRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	labels := make([]string, len(sorted))
	values := make([]float64, len(sorted))
	for i, r := range sorted {
		labels[i] = r.CreatedAt.Format("2006-01-02")
		values[i] = r.Overall
	}
	return labels, values
}

// TileFrequency es la frecuencia de aparición de un nombre de tile en el
// histórico. Percent es sobre el total de apariciones de tiles, no sobre el
// número de trades.
type TileFrequency struct {
	Name    string
	Count   int
	Percent int
}

// DeriveTileFrequency cuenta las apariciones de cada nombre de tile en todos
// los records — un nombre repetido dentro de un mismo record cuenta dos
// veces, a propósito. Devuelve como mucho los 6 más frecuentes, en orden
// descendente por count (estable: los empates conservan el orden de primera
// aparición). Sin records devuelve un slice vacío, no un error.
func DeriveTileFrequency(records []TradeRecord) []TileFrequency {
	counts := make(map[string]int)
	var order []string // primera aparición, para empates deterministas

	total := 0
	for _, r := range records {
		for _, t := range r.Tiles {
			name := strings.TrimSpace(t.Name)
			if name == "" {
				name = "Unknown"
			}
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
			total++
		}
	}
	if total == 0 {
		return nil
	}

	freqs := make([]TileFrequency, 0, len(order))
	for _, name := range order {
		c := counts[name]
		freqs = append(freqs, TileFrequency{
			Name:    name,
			Count:   c,
			Percent: int(math.Round(100 * float64(c) / float64(total))),
		})
	}

	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Count > freqs[j].Count
	})

	if len(freqs) > 6 {
		freqs = freqs[:6]
	}
	return freqs
}

// QuickStats son las métricas agregadas del histórico. ProfitFactor puede
// ser +Inf (solo ganancias, ninguna pérdida) — es el único sitio del engine
// donde un infinito es salida legítima.
type QuickStats struct {
	WinRate      int
	AvgReturn    float64
	ProfitFactor float64
}

// DeriveQuickStats calcula win rate, retorno medio y profit factor sobre el
// histórico completo. Devuelve nil con cero records: el caller sustituye un
// placeholder estático, no hay stats de la nada.
//
// Para win/loss y profit factor se prefiere pnl cuando está presente; si no,
// se usa overall como proxy. AvgReturn es la media de overall de TODOS los
// records, no solo de las wins.
func DeriveQuickStats(records []TradeRecord) *QuickStats {
	if len(records) == 0 {
		return nil
	}

	var wins int
	var overallSum, profitSum, lossSum float64

	for _, r := range records {
		v := r.Overall
		if r.PnL != nil {
			v = *r.PnL
		}

		if v > 0 {
			wins++
			profitSum += v
		} else if v < 0 {
			lossSum += -v
		}
		overallSum += r.Overall
	}

	n := float64(len(records))
	stats := &QuickStats{
		WinRate:   int(math.Round(100 * float64(wins) / n)),
		AvgReturn: overallSum / n,
	}

	switch {
	case lossSum > 0:
		stats.ProfitFactor = Round2(profitSum / lossSum)
	case profitSum > 0:
		stats.ProfitFactor = math.Inf(1)
	default:
		stats.ProfitFactor = 0
	}

	return stats
}

// TotalPnL suma el pnl de los records que lo tienen. Los records sin pnl
// contribuyen 0.
func TotalPnL(records []TradeRecord) float64 {
	var sum float64
	for _, r := range records {
		if r.PnL != nil {
			sum += *r.PnL
		}
	}
	return sum
}
