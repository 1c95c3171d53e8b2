package marketdata_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/consts"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/infra/marketdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type write struct {
	key   string
	value float64
}

// chanCache - сообщает о каждой записи в канал
type chanCache struct {
	mu     sync.Mutex
	err    error
	writes chan write
}

func newChanCache(err error) *chanCache {
	return &chanCache{err: err, writes: make(chan write, 4)}
}

func (c *chanCache) SetFloat(_ context.Context, key string, value float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes <- write{key: key, value: value}
	return c.err
}

func price(v float64) *float64 { return &v }

func TestBenchmark_WritesBenchmarkPrice(t *testing.T) {
	cache := newChanCache(nil)
	b := marketdata.NewBenchmark(cache, "btc-bitcoin", slog.Default())

	b.Record(context.Background(), []domain.Ticker{
		{ID: "eth-ethereum", Price: price(3000)},
		{ID: "btc-bitcoin", Price: price(65000)},
	})

	select {
	case w := <-cache.writes:
		assert.Equal(t, consts.BenchmarkPriceKey, w.key)
		assert.Equal(t, 65000.0, w.value)
	case <-time.After(time.Second):
		t.Fatal("benchmark price was not written")
	}
}

func TestBenchmark_SkipsWhenCoinMissing(t *testing.T) {
	cache := newChanCache(nil)
	b := marketdata.NewBenchmark(cache, "btc-bitcoin", slog.Default())

	b.Record(context.Background(), []domain.Ticker{
		{ID: "eth-ethereum", Price: price(3000)},
		{ID: "btc-bitcoin", Price: nil},
	})

	select {
	case w := <-cache.writes:
		t.Fatalf("unexpected write: %+v", w)
	case <-time.After(50 * time.Millisecond):
	}
}

// Ошибка записи только логируется
func TestBenchmark_WriteFailureIsSwallowed(t *testing.T) {
	cache := newChanCache(errors.New("db down"))
	b := marketdata.NewBenchmark(cache, "bitcoin", slog.Default())

	require.NotPanics(t, func() {
		b.Record(context.Background(), []domain.Ticker{{ID: "bitcoin", Price: price(1)}})
	})
	select {
	case <-cache.writes:
	case <-time.After(time.Second):
		t.Fatal("expected write attempt")
	}
}

// Запись не отменяется вместе с контекстом запроса
func TestBenchmark_SurvivesCanceledContext(t *testing.T) {
	cache := newChanCache(nil)
	b := marketdata.NewBenchmark(cache, "bitcoin", slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b.Record(ctx, []domain.Ticker{{ID: "bitcoin", Price: price(2)}})

	select {
	case w := <-cache.writes:
		assert.Equal(t, 2.0, w.value)
	case <-time.After(time.Second):
		t.Fatal("benchmark price was not written")
	}
}

func TestBenchmark_NilIsNoop(t *testing.T) {
	var b *marketdata.Benchmark
	assert.NotPanics(t, func() {
		b.Record(context.Background(), []domain.Ticker{{ID: "bitcoin", Price: price(1)}})
	})
}
