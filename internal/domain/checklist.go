package domain

// checklist.go — modelo del checklist de confluencia.
//
// Un Tile agrupa criterios (ChecklistItem) de un timeframe o punto de
// decisión. Su tipo se resuelve UNA vez al construirlo: o es un tile de
// scoring (suma porcentajes) o es el tile especial de risk-flags, que no
// puntúa y solo lleva los booleanos de stop loss / take profit.

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// TileKind distingue los dos tipos de tile. Se resuelve en NewTile y no se
// vuelve a comparar el nombre en ningún read path.
type TileKind int

const (
	// TileScoring suma los pesos de los items marcados.
	TileScoring TileKind = iota
	// TileRiskFlags lleva los flags stop-loss/take-profit, sin score numérico.
	TileRiskFlags
)

// riskFlagsName es el nombre literal que marca la variante risk-flags
// (comparación case-insensitive y sin espacios sobrantes).
const riskFlagsName = "stop loss & take profit"

// ErrIndexOutOfRange indica un índice de item inválido en Toggle.
// Es un error de programación del caller, no de usuario.
var ErrIndexOutOfRange = errors.New("checklist item index out of range")

// ChecklistItem es un criterio individual con peso porcentual con signo.
// Weight conserva el texto original ("+10%", "-5%", "10%"); el valor
// numérico se extrae con ParseWeight en cada recomputación.
type ChecklistItem struct {
	Label   string
	Weight  string
	Checked bool
}

var weightPattern = regexp.MustCompile(`[+-]?\d+(?:\.\d+)?`)

// ParseWeight extrae el primer número decimal con signo del texto, con o sin
// sufijo "%". Devuelve (0, false) si no hay nada parseable — el caller trata
// !ok como contribución cero, pero los tests pueden distinguir "cero legítimo"
// de "no parseó".
func ParseWeight(s string) (float64, bool) {
	m := weightPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsRiskFlagsName indica si un nombre de tile corresponde a la variante
// risk-flags. Solo se usa en construcción y en la normalización de records
// leídos de fuera.
func IsRiskFlagsName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), riskFlagsName)
}

// Tile es un grupo nombrado de criterios. Items mantiene el orden de
// inserción (orden de display); el score es independiente del orden.
type Tile struct {
	Name  string
	Kind  TileKind
	Items []ChecklistItem
}

// defaultScoringItems es el set de criterios por defecto de un tile de
// scoring creado sin items.
func defaultScoringItems() []ChecklistItem {
	return []ChecklistItem{
		{Label: "Trend", Weight: "+10%"},
		{Label: "At AOI/Rejected", Weight: "+10%"},
		{Label: "Touching EMA", Weight: "+5%"},
		{Label: "Round Psychological Level", Weight: "+5%"},
		{Label: "Rejection From Previous Structure", Weight: "+10%"},
		{Label: "Candlestick Rejection From AOI", Weight: "+10%"},
		{Label: "Break & Retest/Head & Shoulders Pattern", Weight: "+10%"},
	}
}

// defaultRiskItems son los dos flags del tile risk-flags creado sin items.
func defaultRiskItems() []ChecklistItem {
	return []ChecklistItem{
		{Label: "Stop Loss"},
		{Label: "Take Profit"},
	}
}

// NewTile construye un tile resolviendo su tipo a partir del nombre.
// Si no se pasan items, se usa el set por defecto de cada variante.
func NewTile(name string, items []ChecklistItem) Tile {
	kind := TileScoring
	if IsRiskFlagsName(name) {
		kind = TileRiskFlags
	}
	if len(items) == 0 {
		if kind == TileRiskFlags {
			items = defaultRiskItems()
		} else {
			items = defaultScoringItems()
		}
	}
	return Tile{Name: name, Kind: kind, Items: items}
}

// Toggle invierte el flag Checked del item en el índice dado.
func (t *Tile) Toggle(i int) error {
	if i < 0 || i >= len(t.Items) {
		return ErrIndexOutOfRange
	}
	t.Items[i].Checked = !t.Items[i].Checked
	return nil
}

// Score recomputa el score del tile desde sus items. Para la variante
// risk-flags devuelve ok=false (no hay score numérico). Para un tile de
// scoring devuelve la suma con signo de los pesos marcados — 0 con todo
// desmarcado, nunca ok=false. El valor se devuelve a precisión completa;
// solo la presentación redondea (Round1).
func (t Tile) Score() (float64, bool) {
	if t.Kind == TileRiskFlags {
		return 0, false
	}
	var sum float64
	for _, it := range t.Items {
		if !it.Checked {
			continue
		}
		w, _ := ParseWeight(it.Weight)
		sum += w
	}
	return sum, true
}

// RiskFlags lee los booleanos stop-loss/take-profit buscando los items cuyo
// label contiene "stop loss" / "take profit" (substring, case-insensitive).
// Si no existe el item correspondiente, el flag queda en false.
func (t Tile) RiskFlags() (stopLoss, takeProfit bool) {
	for _, it := range t.Items {
		label := strings.ToLower(it.Label)
		switch {
		case strings.Contains(label, "stop loss"):
			stopLoss = it.Checked
		case strings.Contains(label, "take profit"):
			takeProfit = it.Checked
		}
	}
	return stopLoss, takeProfit
}
