package holdings_test

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/repository/memory"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/service/holdings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coinIDs(items []domain.Holding) []string {
	out := make([]string, 0, len(items))
	for _, h := range items {
		out = append(out, h.CoinID)
	}
	return out
}

// Повторное добавление той же монеты: одна позиция, количество суммируется
func TestStore_AddMergesSameCoin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := holdings.NewStore(slog.Default())

	first, err := s.Add(ctx, "btc", "Bitcoin", "BTC", 1.0)
	require.NoError(t, err)
	second, err := s.Add(ctx, "btc", "Bitcoin", "BTC", 2.5)
	require.NoError(t, err)

	items := s.List()
	require.Len(t, items, 1)
	assert.Equal(t, 3.5, items[0].Amount)
	assert.Equal(t, first.ID, second.ID, "merge must keep the holding identity")
}

func TestStore_AddManyTimesSumsAmounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := holdings.NewStore(slog.Default())

	amounts := []float64{0.25, 0.5, 1, 2, 4}
	want := 0.0
	for _, a := range amounts {
		_, err := s.Add(ctx, "eth-ethereum", "Ethereum", "ETH", a)
		require.NoError(t, err)
		want += a
	}
	_, err := s.Add(ctx, "btc-bitcoin", "Bitcoin", "BTC", 1)
	require.NoError(t, err)

	items := s.List()
	require.Len(t, items, 2)
	assert.Equal(t, []string{"eth-ethereum", "btc-bitcoin"}, coinIDs(items))
	assert.Equal(t, want, items[0].Amount)
}

func TestStore_AddRejectsNonFinite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := holdings.NewStore(slog.Default())

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := s.Add(ctx, "btc", "Bitcoin", "BTC", v)
		require.ErrorIs(t, err, holdings.ErrInvalidAmount)
	}
	assert.Empty(t, s.List())
}

// Знак количества не проверяется хранилищем
func TestStore_AddAcceptsNegative(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := holdings.NewStore(slog.Default())

	_, err := s.Add(ctx, "btc", "Bitcoin", "BTC", 2)
	require.NoError(t, err)
	_, err = s.Add(ctx, "btc", "Bitcoin", "BTC", -0.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, s.List()[0].Amount)
}

func TestStore_RemoveKeepsRelativeOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := holdings.NewStore(slog.Default())
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		_, err := s.Add(ctx, id, id, id, 1)
		require.NoError(t, err)
	}

	require.NoError(t, s.Remove(ctx, 3, 1, 3))
	assert.Equal(t, []string{"a", "c", "e"}, coinIDs(s.List()))

	require.NoError(t, s.Remove(ctx, 0))
	assert.Equal(t, []string{"c", "e"}, coinIDs(s.List()))
}

func TestStore_RemoveOutOfRangeIsAtomic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := holdings.NewStore(slog.Default())
	for _, id := range []string{"a", "b"} {
		_, err := s.Add(ctx, id, id, id, 1)
		require.NoError(t, err)
	}

	err := s.Remove(ctx, 0, 2)
	require.ErrorIs(t, err, holdings.ErrPositionOutOfRange)
	err = s.Remove(ctx, -1)
	require.ErrorIs(t, err, holdings.ErrPositionOutOfRange)
	assert.Equal(t, []string{"a", "b"}, coinIDs(s.List()))
}

func TestStore_ListReturnsCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := holdings.NewStore(slog.Default())
	_, err := s.Add(ctx, "btc", "Bitcoin", "BTC", 1)
	require.NoError(t, err)

	items := s.List()
	items[0].Amount = 100
	assert.Equal(t, 1.0, s.List()[0].Amount)
}

func TestStore_SubscribeNotifiesAfterMutation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := holdings.NewStore(slog.Default())

	var got [][]domain.Holding
	unsubscribe := s.Subscribe(holdings.ListenerFunc(func(_ context.Context, items []domain.Holding) {
		got = append(got, items)
	}))

	_, err := s.Add(ctx, "btc", "Bitcoin", "BTC", 1)
	require.NoError(t, err)
	_, err = s.Add(ctx, "btc", "Bitcoin", "BTC", 1)
	require.NoError(t, err)
	require.NoError(t, s.Remove(ctx, 0))

	require.Len(t, got, 3)
	assert.Equal(t, 1.0, got[0][0].Amount)
	assert.Equal(t, 2.0, got[1][0].Amount)
	assert.Empty(t, got[2])

	// неудачные изменения не уведомляют
	_, err = s.Add(ctx, "btc", "Bitcoin", "BTC", math.NaN())
	require.Error(t, err)
	require.Error(t, s.Remove(ctx, 5))
	assert.Len(t, got, 3)

	unsubscribe()
	_, err = s.Add(ctx, "eth", "Ethereum", "ETH", 1)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestStore_RestoreAndPersist(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := memory.NewHoldingRepository()

	s := holdings.NewStore(slog.Default())
	s.Subscribe(holdings.NewPersister(repo, slog.Default()))
	_, err := s.Add(ctx, "btc", "Bitcoin", "BTC", 0.5)
	require.NoError(t, err)
	_, err = s.Add(ctx, "eth", "Ethereum", "ETH", 3)
	require.NoError(t, err)

	restored := holdings.NewStore(slog.Default())
	require.NoError(t, restored.Restore(ctx, repo))
	assert.Equal(t, s.List(), restored.List())
}

func TestStore_RestoreMergesDuplicates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := memory.NewHoldingRepository()
	require.NoError(t, repo.Save(ctx, []domain.Holding{
		{CoinID: "btc", Amount: 1},
		{CoinID: "eth", Amount: 2},
		{CoinID: "btc", Amount: 0.5},
	}))

	s := holdings.NewStore(slog.Default())
	require.NoError(t, s.Restore(ctx, repo))
	items := s.List()
	require.Len(t, items, 2)
	assert.Equal(t, 1.5, items[0].Amount)
}

type failingRepo struct{ err error }

func (f failingRepo) Load(context.Context) ([]domain.Holding, error) { return nil, f.err }
func (f failingRepo) Save(context.Context, []domain.Holding) error   { return f.err }

func TestStore_PersistFailureDoesNotFailMutation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("db down")

	s := holdings.NewStore(slog.Default())
	s.Subscribe(holdings.NewPersister(failingRepo{err: boom}, slog.Default()))
	_, err := s.Add(ctx, "btc", "Bitcoin", "BTC", 1)
	require.NoError(t, err)
	assert.Len(t, s.List(), 1)

	err = s.Restore(ctx, failingRepo{err: boom})
	require.ErrorIs(t, err, boom)
}
