package checklist

// session.go — estado de una sesión de scoring.
//
// Una Session es propiedad exclusiva del caller que la creó: no hay estado
// compartido entre sesiones concurrentes. Todo es computación síncrona en
// memoria salvo Save y DeleteTrade, las dos únicas fronteras de I/O.

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/tradecheck/internal/domain"
	"github.com/alejandrodnm/tradecheck/internal/ports"
	"golang.org/x/time/rate"
)

// ErrSaveThrottled indica un segundo save dentro de la ventana del limiter
// (doble submit). Se trata como error de validación: se reporta y no se
// reintenta.
var ErrSaveThrottled = errors.New("a save is already in progress, try again in a moment")

// Session mantiene la lista de tiles en curso de un usuario y coordina el
// guardado contra el store.
type Session struct {
	userID string
	tiles  []domain.Tile
	store  ports.TradeStorage

	// Un save por segundo: el equivalente a deshabilitar el botón de guardar
	// mientras hay un save en vuelo.
	saveLimiter *rate.Limiter

	// createdAt no decrece dentro de la sesión aunque el reloj retroceda.
	lastCreated time.Time
}

// NewSession crea una sesión con los tiles dados. Los tiles sin items
// reciben el set por defecto de su variante (ver domain.NewTile).
func NewSession(userID string, tiles []domain.Tile, store ports.TradeStorage) *Session {
	return &Session{
		userID:      userID,
		tiles:       tiles,
		store:       store,
		saveLimiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Tiles devuelve la lista de tiles de la sesión, en orden de display.
func (s *Session) Tiles() []domain.Tile {
	return s.tiles
}

// Toggle invierte el item (tileIdx, itemIdx) y devuelve el score recomputado
// del tile (ok=false para el tile risk-flags). Un índice inválido es
// domain.ErrIndexOutOfRange: error de programación del caller, no de usuario.
func (s *Session) Toggle(tileIdx, itemIdx int) (float64, bool, error) {
	if tileIdx < 0 || tileIdx >= len(s.tiles) {
		return 0, false, fmt.Errorf("checklist.Toggle: tile %d: %w", tileIdx, domain.ErrIndexOutOfRange)
	}
	if err := s.tiles[tileIdx].Toggle(itemIdx); err != nil {
		return 0, false, fmt.Errorf("checklist.Toggle: tile %d item %d: %w", tileIdx, itemIdx, err)
	}
	score, ok := s.tiles[tileIdx].Score()
	return score, ok, nil
}

// Overall devuelve el score global recomputado desde los tiles. Nunca se
// cachea: el valor derivado no puede divergir del estado de los items.
func (s *Session) Overall() float64 {
	return domain.ComputeOverall(s.tiles)
}

// Message devuelve la clasificación cualitativa del score global actual.
func (s *Session) Message() string {
	return domain.Classify(s.Overall())
}

// Save normaliza los tiles al shape persistido y lo inserta. Secuencia
// estricta: validación → EnsureProfile → Insert. Si el ensure del perfil
// falla, el insert ni se intenta — nunca queda un trade huérfano. pnl es
// opcional y llega fuera de banda (no hay UI que lo fije).
func (s *Session) Save(ctx context.Context, pnl *float64) (string, error) {
	rec, err := domain.BuildRecord(s.userID, s.tiles, s.now())
	if err != nil {
		// Error de validación: se corta antes de cualquier llamada al store.
		return "", fmt.Errorf("checklist.Save: %w", err)
	}
	rec.PnL = pnl

	if !s.saveLimiter.Allow() {
		return "", fmt.Errorf("checklist.Save: %w", ErrSaveThrottled)
	}

	if err := s.store.EnsureProfile(ctx, s.userID); err != nil {
		return "", fmt.Errorf("checklist.Save: ensure profile: %w", err)
	}

	id, err := s.store.Insert(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("checklist.Save: insert: %w", err)
	}

	s.lastCreated = rec.CreatedAt
	slog.Debug("trade saved", "id", id, "user", s.userID, "overall", rec.Overall)
	return id, nil
}

// DeleteTrade borra un trade guardado. domain.ErrNotFound si el id no existe.
func (s *Session) DeleteTrade(ctx context.Context, id string) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("checklist.DeleteTrade: %w", err)
	}
	return nil
}

// now devuelve el timestamp del save, no-decreciente dentro de la sesión.
func (s *Session) now() time.Time {
	t := time.Now().UTC()
	if t.Before(s.lastCreated) {
		t = s.lastCreated
	}
	return t
}
