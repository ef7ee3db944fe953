package domain_test

import (
	"testing"

	"github.com/alejandrodnm/tradecheck/internal/domain"
	"github.com/stretchr/testify/assert"
)

func scoringTile(name, weight string, checked bool) domain.Tile {
	return domain.NewTile(name, []domain.ChecklistItem{
		{Label: "Trend", Weight: weight, Checked: checked},
	})
}

func TestComputeOverall_Empty(t *testing.T) {
	assert.Equal(t, 0.0, domain.ComputeOverall(nil))
}

func TestComputeOverall_SumsScoringTiles(t *testing.T) {
	tiles := []domain.Tile{
		scoringTile("1D", "+30%", true),
		scoringTile("4H", "+25%", true),
		scoringTile("1H", "+10%", false), // nada marcado: contribuye 0
	}
	assert.Equal(t, 55.0, domain.ComputeOverall(tiles))
}

func TestComputeOverall_RiskFlagsContributesNothing(t *testing.T) {
	tiles := []domain.Tile{
		scoringTile("1D", "+40%", true),
		domain.NewTile("Stop Loss & Take Profit", nil),
	}
	assert.Equal(t, 40.0, domain.ComputeOverall(tiles))
}

func TestComputeOverall_OrderInvariant(t *testing.T) {
	a := scoringTile("1D", "+30%", true)
	b := scoringTile("4H", "+20%", true)

	assert.Equal(t,
		domain.ComputeOverall([]domain.Tile{a, b}),
		domain.ComputeOverall([]domain.Tile{b, a}),
	)
}

// Los límites de banda son inclusivos por abajo y se evalúan en orden.
func TestClassify_Boundaries(t *testing.T) {
	assert.Equal(t, domain.MsgExcellent, domain.Classify(70.0))
	assert.Equal(t, domain.MsgGood, domain.Classify(69.9))
	assert.Equal(t, domain.MsgGood, domain.Classify(50.0))
	assert.Equal(t, domain.MsgFair, domain.Classify(49.9))
	assert.Equal(t, domain.MsgFair, domain.Classify(30.0))
	assert.Equal(t, domain.MsgWeak, domain.Classify(29.9))
}

func TestClassify_Negative(t *testing.T) {
	assert.Equal(t, domain.MsgWeak, domain.Classify(-15))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 12.3, domain.Round1(12.34))
	assert.Equal(t, 12.4, domain.Round1(12.35))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.67, domain.Round2(5.0/3.0))
}
