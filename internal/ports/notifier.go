package ports

import (
	"context"

	"github.com/alejandrodnm/tradecheck/internal/domain"
)

// Notifier presenta el estado del checklist y las analíticas al usuario.
type Notifier interface {
	// ShowSummary muestra el resumen de confluencia de la sesión actual.
	ShowSummary(ctx context.Context, tiles []domain.Tile) error

	// ShowHistory muestra el histórico de trades guardados.
	ShowHistory(ctx context.Context, records []domain.TradeRecord) error

	// ShowDashboard muestra la serie temporal, la frecuencia de tiles y las
	// quick stats derivadas del histórico.
	ShowDashboard(ctx context.Context, records []domain.TradeRecord) error
}
