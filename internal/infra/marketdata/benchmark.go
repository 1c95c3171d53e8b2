package marketdata

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/consts"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
)

// PriceCache - общее хранилище цены эталонной монеты (читает бот / виджет)
type PriceCache interface {
	SetFloat(ctx context.Context, key string, value float64) error
}

// Benchmark - запись цены эталонной монеты после успешного получения тикеров.
// Запись выполняется в фоне и никогда не влияет на результат основного запроса.
type Benchmark struct {
	cache   PriceCache
	coinID  string
	timeout time.Duration
	logger  *slog.Logger
}

// NewBenchmark - cache == nil отключает запись
func NewBenchmark(cache PriceCache, coinID string, logger *slog.Logger) *Benchmark {
	return &Benchmark{
		cache:   cache,
		coinID:  coinID,
		timeout: 2 * time.Second,
		logger:  logger,
	}
}

// Record - находит эталонную монету в списке и асинхронно пишет её цену
func (b *Benchmark) Record(ctx context.Context, tickers []domain.Ticker) {
	if b == nil || b.cache == nil || b.coinID == "" {
		return
	}
	var price *float64
	for i := range tickers {
		if tickers[i].ID == b.coinID && tickers[i].Price != nil {
			price = tickers[i].Price
		}
	}
	if price == nil {
		b.logger.Debug("benchmark coin not found in tickers", slog.String("coin_id", b.coinID))
		return
	}

	value := *price
	wctx := context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(wctx, b.timeout)
		defer cancel()
		if err := b.cache.SetFloat(ctx, consts.BenchmarkPriceKey, value); err != nil {
			b.logger.Warn("benchmark price write failed", slog.String("coin_id", b.coinID), slog.Any("err", err))
			return
		}
		b.logger.Debug("benchmark price stored", slog.String("coin_id", b.coinID), slog.Float64("price", value))
	}()
}
