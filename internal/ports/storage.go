package ports

import (
	"context"

	"github.com/alejandrodnm/tradecheck/internal/domain"
)

// TradeStorage es el colaborador de persistencia. El engine lo trata como
// cuatro operaciones más el upsert de perfil; no asume nada sobre el orden
// de los listados más allá de lo documentado aquí.
type TradeStorage interface {
	// Insert persiste un record y devuelve el id asignado por el store.
	Insert(ctx context.Context, rec domain.TradeRecord) (string, error)

	// ListByUser devuelve los trades de un usuario, created_at DESC.
	ListByUser(ctx context.Context, userID string) ([]domain.TradeRecord, error)

	// ListAll devuelve todos los trades, created_at DESC.
	ListAll(ctx context.Context) ([]domain.TradeRecord, error)

	// DeleteByID borra un trade; domain.ErrNotFound si no existe.
	DeleteByID(ctx context.Context, id string) error

	// EnsureProfile hace upsert del perfil mínimo del usuario. Idempotente:
	// no falla porque el perfil ya exista.
	EnsureProfile(ctx context.Context, userID string) error

	// Close cierra la conexión limpiamente.
	Close() error
}
