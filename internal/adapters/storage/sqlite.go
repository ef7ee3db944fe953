package storage

// sqlite.go — persistencia de trades puntuados.
//
// Dos tablas: `profiles` (fila mínima por usuario, solo para satisfacer la
// FK de trades) y `trades` (un trade puntuado por fila, tiles serializados
// como documento JSON). Los records son inmutables una vez insertados: no
// hay UPDATE, solo insert/select/delete.

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alejandrodnm/tradecheck/internal/domain"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA foreign_keys = ON;

-- Perfil mínimo por usuario: existe solo para que la FK de trades siempre
-- sea satisfacible.
CREATE TABLE IF NOT EXISTS profiles (
    id         TEXT PRIMARY KEY,
    created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
    id          TEXT PRIMARY KEY,
    user_id     TEXT NOT NULL REFERENCES profiles(id),
    tiles       TEXT NOT NULL,
    overall     REAL NOT NULL DEFAULT 0,
    stop_loss   INTEGER NOT NULL DEFAULT 0,
    take_profit INTEGER NOT NULL DEFAULT 0,
    pnl         REAL,
    created_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_user ON trades(user_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_trades_at   ON trades(created_at DESC);
`

// timeLayout es de ancho fijo (nanos con ceros) para que el ORDER BY sobre
// la columna TEXT ordene igual que el tiempo real.
const timeLayout = "2006-01-02 15:04:05.000000000"

// SQLiteStorage implementa ports.TradeStorage usando SQLite (pure Go, sin CGo).
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage abre (o crea) la base de datos en la ruta dada y aplica
// el schema.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteStorage: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite es single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteStorage: apply schema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// EnsureProfile hace upsert del perfil mínimo. Idempotente: un perfil ya
// existente no es un error.
func (s *SQLiteStorage) EnsureProfile(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (id, created_at) VALUES (?, ?) ON CONFLICT(id) DO NOTHING`,
		userID, time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage.EnsureProfile: %w", domain.ClassifyStoreErr(err))
	}
	return nil
}

// Insert persiste un record y devuelve el id asignado.
func (s *SQLiteStorage) Insert(ctx context.Context, rec domain.TradeRecord) (string, error) {
	tiles, err := json.Marshal(rec.Tiles)
	if err != nil {
		return "", fmt.Errorf("storage.Insert: marshal tiles: %w", err)
	}

	id := rec.ID
	if id == "" {
		id = uuid.New().String()
	}

	var pnl sql.NullFloat64
	if rec.PnL != nil {
		pnl = sql.NullFloat64{Float64: *rec.PnL, Valid: true}
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO trades (id, user_id, tiles, overall, stop_loss, take_profit, pnl, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, rec.UserID, string(tiles), rec.Overall,
		boolToInt(rec.StopLoss), boolToInt(rec.TakeProfit),
		pnl, rec.CreatedAt.UTC().Format(timeLayout),
	); err != nil {
		return "", fmt.Errorf("storage.Insert: %w", domain.ClassifyStoreErr(err))
	}

	return id, nil
}

// ListByUser devuelve los trades de un usuario, los más recientes primero.
func (s *SQLiteStorage) ListByUser(ctx context.Context, userID string) ([]domain.TradeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, tiles, overall, stop_loss, take_profit, pnl, created_at
		FROM trades
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("storage.ListByUser: query: %w", domain.ClassifyStoreErr(err))
	}
	defer rows.Close()
	return scanTrades(rows)
}

// ListAll devuelve todos los trades, los más recientes primero.
func (s *SQLiteStorage) ListAll(ctx context.Context) ([]domain.TradeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, tiles, overall, stop_loss, take_profit, pnl, created_at
		FROM trades
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("storage.ListAll: query: %w", domain.ClassifyStoreErr(err))
	}
	defer rows.Close()
	return scanTrades(rows)
}

// DeleteByID borra un trade por id. domain.ErrNotFound si no existe.
func (s *SQLiteStorage) DeleteByID(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("storage.DeleteByID: %w", domain.ClassifyStoreErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage.DeleteByID: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("storage.DeleteByID: %q: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Close cierra la conexión a la base de datos.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// scanTrades materializa las filas del SELECT común de trades.
func scanTrades(rows *sql.Rows) ([]domain.TradeRecord, error) {
	var recs []domain.TradeRecord
	for rows.Next() {
		var rec domain.TradeRecord
		var tilesJSON, createdAt string
		var stopLoss, takeProfit int
		var pnl sql.NullFloat64

		if err := rows.Scan(
			&rec.ID, &rec.UserID, &tilesJSON, &rec.Overall,
			&stopLoss, &takeProfit, &pnl, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage.scanTrades: scan row: %w", err)
		}

		if err := json.Unmarshal([]byte(tilesJSON), &rec.Tiles); err != nil {
			return nil, fmt.Errorf("storage.scanTrades: unmarshal tiles of %s: %w", rec.ID, err)
		}
		rec.StopLoss = stopLoss == 1
		rec.TakeProfit = takeProfit == 1
		if pnl.Valid {
			v := pnl.Float64
			rec.PnL = &v
		}
		rec.CreatedAt, _ = time.ParseInLocation(timeLayout, createdAt, time.UTC)

		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
