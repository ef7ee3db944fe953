package domain

// record.go — forma persistida de un trade puntuado.
//
// El record es la frontera con el storage: tiles de scoring se serializan
// como {name, percentageValue} y el tile risk-flags como
// {name, stopLoss, takeProfit}. Los flags se duplican además en la raíz del
// record — ambas copias deben ser consistentes y BuildRecord es el único
// sitio que las escribe.

import (
	"strings"
	"time"
)

// RecordTile es la entrada de un tile dentro del record persistido. Según la
// variante se rellena PercentageValue o la pareja StopLoss/TakeProfit; los
// punteros nil no se serializan.
type RecordTile struct {
	Name            string   `json:"name"`
	PercentageValue *float64 `json:"percentageValue,omitempty"`
	StopLoss        *bool    `json:"stopLoss,omitempty"`
	TakeProfit      *bool    `json:"takeProfit,omitempty"`
}

// TradeRecord es un trade puntuado tal y como se persiste. Una vez insertado
// es inmutable para el engine: no hay path de update, solo borrado.
type TradeRecord struct {
	ID         string       `json:"id,omitempty"`
	UserID     string       `json:"user_id"`
	Tiles      []RecordTile `json:"tiles"`
	Overall    float64      `json:"overall"`
	StopLoss   bool         `json:"stop_loss"`
	TakeProfit bool         `json:"take_profit"`
	CreatedAt  time.Time    `json:"created_at"`
	PnL        *float64     `json:"pnl,omitempty"`
}

// BuildRecord normaliza una lista de tiles en memoria al shape persistido.
// Valida antes de tocar nada: sin userID o sin tiles es un error del caller
// (ErrNoUser / ErrNoTiles) y debe cortarse antes de cualquier llamada al
// store. El ID lo asigna el store en el insert.
func BuildRecord(userID string, tiles []Tile, now time.Time) (TradeRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return TradeRecord{}, ErrNoUser
	}
	if len(tiles) == 0 {
		return TradeRecord{}, ErrNoTiles
	}

	rec := TradeRecord{
		UserID:    userID,
		Tiles:     make([]RecordTile, 0, len(tiles)),
		Overall:   ComputeOverall(tiles),
		CreatedAt: now,
	}

	for _, t := range tiles {
		if t.Kind == TileRiskFlags {
			sl, tp := t.RiskFlags()
			rec.Tiles = append(rec.Tiles, RecordTile{
				Name:       t.Name,
				StopLoss:   &sl,
				TakeProfit: &tp,
			})
			// Copias izadas a la raíz del record.
			rec.StopLoss = sl
			rec.TakeProfit = tp
			continue
		}

		// Un score ausente se normaliza a 0 en la frontera, nunca queda null.
		s, ok := t.Score()
		if !ok {
			s = 0
		}
		rec.Tiles = append(rec.Tiles, RecordTile{Name: t.Name, PercentageValue: &s})
	}

	return rec, nil
}
