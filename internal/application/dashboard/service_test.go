package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alejandrodnm/tradecheck/internal/application/dashboard"
	"github.com/alejandrodnm/tradecheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	byUser  []domain.TradeRecord
	all     []domain.TradeRecord
	listErr error
	lastOp  string
}

func (f *fakeStore) Insert(context.Context, domain.TradeRecord) (string, error) { return "", nil }

func (f *fakeStore) ListByUser(_ context.Context, _ string) ([]domain.TradeRecord, error) {
	f.lastOp = "listByUser"
	return f.byUser, f.listErr
}

func (f *fakeStore) ListAll(context.Context) ([]domain.TradeRecord, error) {
	f.lastOp = "listAll"
	return f.all, f.listErr
}

func (f *fakeStore) DeleteByID(context.Context, string) error    { return nil }
func (f *fakeStore) EnsureProfile(context.Context, string) error { return nil }
func (f *fakeStore) Close() error                                { return nil }

func TestService_Records_ByUser(t *testing.T) {
	store := &fakeStore{byUser: []domain.TradeRecord{{UserID: "user-1"}}}
	svc := dashboard.New(store)

	recs, err := svc.Records(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, "listByUser", store.lastOp)
}

// Sesión anónima: cae al histórico completo.
func TestService_Records_AnonymousFallsBackToAll(t *testing.T) {
	store := &fakeStore{all: []domain.TradeRecord{{UserID: "a"}, {UserID: "b"}}}
	svc := dashboard.New(store)

	recs, err := svc.Records(context.Background(), "  ")
	require.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, "listAll", store.lastOp)
}

func TestService_Records_PropagatesError(t *testing.T) {
	store := &fakeStore{listErr: errors.New("boom")}
	svc := dashboard.New(store)

	_, err := svc.Records(context.Background(), "user-1")
	assert.Error(t, err)
}
