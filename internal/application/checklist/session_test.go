package checklist_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alejandrodnm/tradecheck/internal/application/checklist"
	"github.com/alejandrodnm/tradecheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore registra el orden de llamadas al port de storage para verificar
// la secuencia validación → EnsureProfile → Insert.
type fakeStore struct {
	calls     []string
	ensureErr error
	insertErr error
	inserted  []domain.TradeRecord
	deleted   []string
}

func (f *fakeStore) Insert(_ context.Context, rec domain.TradeRecord) (string, error) {
	f.calls = append(f.calls, "insert")
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.inserted = append(f.inserted, rec)
	return "id-1", nil
}

func (f *fakeStore) ListByUser(context.Context, string) ([]domain.TradeRecord, error) {
	f.calls = append(f.calls, "listByUser")
	return nil, nil
}

func (f *fakeStore) ListAll(context.Context) ([]domain.TradeRecord, error) {
	f.calls = append(f.calls, "listAll")
	return nil, nil
}

func (f *fakeStore) DeleteByID(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete")
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStore) EnsureProfile(_ context.Context, _ string) error {
	f.calls = append(f.calls, "ensureProfile")
	return f.ensureErr
}

func (f *fakeStore) Close() error { return nil }

func defaultTiles() []domain.Tile {
	return []domain.Tile{
		domain.NewTile("1D", []domain.ChecklistItem{
			{Label: "Trend", Weight: "+10%"},
			{Label: "EMA Alignment", Weight: "+10%"},
		}),
		domain.NewTile("Stop Loss & Take Profit", nil),
	}
}

func TestSession_Toggle_UpdatesOverall(t *testing.T) {
	s := checklist.NewSession("user-1", defaultTiles(), &fakeStore{})

	score, ok, err := s.Toggle(0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 10.0, score)
	assert.Equal(t, 10.0, s.Overall())
	assert.Equal(t, domain.MsgWeak, s.Message())
}

func TestSession_Toggle_RiskFlagsTileHasNoScore(t *testing.T) {
	s := checklist.NewSession("user-1", defaultTiles(), &fakeStore{})

	_, ok, err := s.Toggle(1, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_Toggle_BadTileIndex(t *testing.T) {
	s := checklist.NewSession("user-1", defaultTiles(), &fakeStore{})
	_, _, err := s.Toggle(9, 0)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestSession_Save_HappyPath(t *testing.T) {
	store := &fakeStore{}
	s := checklist.NewSession("user-1", defaultTiles(), store)
	_, _, err := s.Toggle(0, 0)
	require.NoError(t, err)

	id, err := s.Save(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)

	// El ensure del perfil SIEMPRE precede al insert.
	assert.Equal(t, []string{"ensureProfile", "insert"}, store.calls)

	require.Len(t, store.inserted, 1)
	assert.Equal(t, "user-1", store.inserted[0].UserID)
	assert.Equal(t, 10.0, store.inserted[0].Overall)
}

func TestSession_Save_NoUser_NoStoreCalls(t *testing.T) {
	store := &fakeStore{}
	s := checklist.NewSession("", defaultTiles(), store)

	_, err := s.Save(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoUser)
	assert.Empty(t, store.calls)
}

func TestSession_Save_NoTiles_NoStoreCalls(t *testing.T) {
	store := &fakeStore{}
	s := checklist.NewSession("user-1", nil, store)

	_, err := s.Save(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoTiles)
	assert.Empty(t, store.calls)
}

// Si el ensure del perfil falla, el insert ni se intenta: nunca queda un
// trade huérfano.
func TestSession_Save_EnsureProfileFails_NoInsert(t *testing.T) {
	store := &fakeStore{ensureErr: errors.New("profiles table locked")}
	s := checklist.NewSession("user-1", defaultTiles(), store)

	_, err := s.Save(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, []string{"ensureProfile"}, store.calls)
}

func TestSession_Save_InsertFails_Propagates(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("UNIQUE constraint failed")}
	s := checklist.NewSession("user-1", defaultTiles(), store)

	_, err := s.Save(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, []string{"ensureProfile", "insert"}, store.calls)
	assert.Empty(t, store.inserted)
}

func TestSession_Save_Throttled(t *testing.T) {
	store := &fakeStore{}
	s := checklist.NewSession("user-1", defaultTiles(), store)

	_, err := s.Save(context.Background(), nil)
	require.NoError(t, err)

	// Doble submit inmediato: se corta antes de tocar el store.
	_, err = s.Save(context.Background(), nil)
	assert.ErrorIs(t, err, checklist.ErrSaveThrottled)
	assert.Equal(t, []string{"ensureProfile", "insert"}, store.calls)
}

func TestSession_Save_AttachesPnL(t *testing.T) {
	store := &fakeStore{}
	s := checklist.NewSession("user-1", defaultTiles(), store)

	pnl := 150.25
	_, err := s.Save(context.Background(), &pnl)
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	require.NotNil(t, store.inserted[0].PnL)
	assert.Equal(t, 150.25, *store.inserted[0].PnL)
}

func TestSession_DeleteTrade(t *testing.T) {
	store := &fakeStore{}
	s := checklist.NewSession("user-1", defaultTiles(), store)

	require.NoError(t, s.DeleteTrade(context.Background(), "id-9"))
	assert.Equal(t, []string{"id-9"}, store.deleted)
}
