package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPool - пул к тестовой базе. Без TEST_POSTGRES_DSN тесты пропускаются.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))
	t.Cleanup(pool.Close)
	return pool
}

func truncate(t *testing.T, pool *pgxpool.Pool, table string) {
	t.Helper()
	_, err := pool.Exec(context.Background(), "TRUNCATE "+table)
	require.NoError(t, err)
}

func TestHoldingRepo_SaveReplacesAndKeepsOrder(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := postgres.NewHoldingRepository(pool)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx), "schema creation is idempotent")
	truncate(t, pool, "holdings")

	created := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	btc := domain.Holding{ID: uuid.New(), CoinID: "btc-bitcoin", CoinName: "Bitcoin", CoinSymbol: "BTC", Amount: 0.5, CreatedAt: created}
	eth := domain.Holding{ID: uuid.New(), CoinID: "eth-ethereum", CoinName: "Ethereum", CoinSymbol: "ETH", Amount: 2, CreatedAt: created}
	sol := domain.Holding{ID: uuid.New(), CoinID: "sol-solana", CoinName: "Solana", CoinSymbol: "SOL", Amount: 10, CreatedAt: created}

	require.NoError(t, repo.Save(ctx, []domain.Holding{btc, eth, sol}))
	items, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"btc-bitcoin", "eth-ethereum", "sol-solana"},
		[]string{items[0].CoinID, items[1].CoinID, items[2].CoinID})
	assert.Equal(t, btc.ID, items[0].ID)
	assert.Equal(t, 0.5, items[0].Amount)
	assert.True(t, created.Equal(items[0].CreatedAt))

	// второй снимок полностью заменяет первый, порядок берётся из снимка
	require.NoError(t, repo.Save(ctx, []domain.Holding{sol, btc}))
	items, err = repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "sol-solana", items[0].CoinID)
	assert.Equal(t, "btc-bitcoin", items[1].CoinID)

	require.NoError(t, repo.Save(ctx, nil))
	items, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

// Ошибка посреди снимка откатывает всю транзакцию
func TestHoldingRepo_SaveIsAtomic(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := postgres.NewHoldingRepository(pool)
	require.NoError(t, repo.EnsureSchema(ctx))
	truncate(t, pool, "holdings")

	btc := domain.Holding{ID: uuid.New(), CoinID: "btc-bitcoin", CoinName: "Bitcoin", CoinSymbol: "BTC", Amount: 1, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Save(ctx, []domain.Holding{btc}))

	dup := btc
	dup.ID = uuid.New()
	err := repo.Save(ctx, []domain.Holding{btc, dup})
	require.Error(t, err, "coin_id is unique")

	items, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, btc.ID, items[0].ID)
}

func TestSharedPrefsRepo_UpsertAndSuiteIsolation(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	suite := "test-" + uuid.NewString()
	repo := postgres.NewSharedPrefsRepository(pool, suite)
	require.NoError(t, repo.EnsureSchema(ctx))
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM shared_prefs WHERE suite = $1`, suite)
	})

	_, ok, err := repo.Float(ctx, "btcPrice")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetFloat(ctx, "btcPrice", 65000.5))
	require.NoError(t, repo.SetFloat(ctx, "btcPrice", 66000.25))

	v, ok, err := repo.Float(ctx, "btcPrice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 66000.25, v)

	other := postgres.NewSharedPrefsRepository(pool, suite+"-other")
	_, ok, err = other.Float(ctx, "btcPrice")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubscriptionRepo_DueCycle(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := postgres.NewSubscriptionRepository(pool)
	require.NoError(t, repo.EnsureSchema(ctx))
	truncate(t, pool, "portfolio_subscriptions")

	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkEnabled(ctx, 20, 5))
	require.NoError(t, repo.MarkEnabled(ctx, 10, 60))

	due, err := repo.FindDue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20}, due)

	require.NoError(t, repo.MarkSent(ctx, 10, now))
	require.NoError(t, repo.MarkSent(ctx, 20, now))

	due, err = repo.FindDue(ctx, now.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, []int64{20}, due)

	require.NoError(t, repo.MarkDisabled(ctx, 20))
	due, err = repo.FindDue(ctx, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, due)
}
