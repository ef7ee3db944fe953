package domain

import "math"

// Mensajes de clasificación del score global. Los textos son user-facing y
// los tests dependen de ellos tal cual.
const (
	MsgExcellent = "Excellent overall — strong positive"
	MsgGood      = "Good overall — positive trend"
	MsgFair      = "Fair overall — watch closely"
	MsgWeak      = "Weak overall — needs attention"
)

// ComputeOverall suma los scores de todos los tiles de scoring. El tile
// risk-flags no contribuye (no tiene score). Lista vacía devuelve 0, no es
// un error. El resultado es invariante al orden de los tiles.
func ComputeOverall(tiles []Tile) float64 {
	var total float64
	for _, t := range tiles {
		if s, ok := t.Score(); ok {
			total += s
		}
	}
	return total
}

// Classify devuelve el mensaje cualitativo para un score global. Las bandas
// se evalúan en orden, con límite inferior inclusivo: un 70.0 exacto es
// "Excellent", no "Good".
func Classify(overall float64) string {
	switch {
	case overall >= 70:
		return MsgExcellent
	case overall >= 50:
		return MsgGood
	case overall >= 30:
		return MsgFair
	default:
		return MsgWeak
	}
}

// Round1 redondea a 1 decimal. Solo para presentación — la agregación
// siempre trabaja a precisión completa.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Round2 redondea a 2 decimales (profit factor).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
