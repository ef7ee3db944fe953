package dashboard

// service.go — read path de las analíticas.
//
// El servicio solo materializa el snapshot de records; las derivaciones
// (serie, frecuencia, quick stats) son funciones puras de domain/analytics y
// se recomputan sobre el snapshot las veces que haga falta.

import (
	"context"
	"fmt"
	"strings"

	"github.com/alejandrodnm/tradecheck/internal/domain"
	"github.com/alejandrodnm/tradecheck/internal/ports"
)

// Service carga el histórico de trades para las vistas de dashboard e
// historial.
type Service struct {
	store ports.TradeStorage
}

// New crea el servicio sobre el store dado.
func New(store ports.TradeStorage) *Service {
	return &Service{store: store}
}

// Records devuelve el snapshot de trades del usuario. Sin usuario (sesión
// anónima) cae a ListAll, igual que el dashboard original.
func (s *Service) Records(ctx context.Context, userID string) ([]domain.TradeRecord, error) {
	if strings.TrimSpace(userID) == "" {
		recs, err := s.store.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("dashboard.Records: list all: %w", err)
		}
		return recs, nil
	}

	recs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Records: list by user: %w", err)
	}
	return recs, nil
}
