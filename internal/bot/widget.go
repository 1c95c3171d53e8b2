package bot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/consts"
)

const defaultWidgetRefresh = 10 * time.Minute

// widgetEntry - то, что показывает виджет: цена BTC на момент чтения
type widgetEntry struct {
	Price    float64
	OK       bool
	LoadedAt time.Time
}

// widget - кэш цены BTC из общего хранилища, перечитывается раз в period.
// Сам провайдер не опрашивает, цену туда пишет сервис.
type widget struct {
	source BenchmarkSource
	period time.Duration
	now    func() time.Time
	logger *slog.Logger

	mu    sync.RWMutex
	entry widgetEntry
}

func newWidget(source BenchmarkSource, period time.Duration, logger *slog.Logger) *widget {
	if period <= 0 {
		period = defaultWidgetRefresh
	}
	return &widget{source: source, period: period, now: time.Now, logger: logger}
}

// run - основной цикл: сразу читаем значение, дальше раз в period
func (w *widget) run(ctx context.Context) {
	w.logger.Info("widget refresher started", slog.Duration("period", w.period))
	t := time.NewTicker(w.period)
	defer t.Stop()

	w.reload(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("widget refresher stopped")
			return
		case <-t.C:
			w.reload(ctx)
		}
	}
}

// reload - при ошибке чтения остаётся прошлое значение
func (w *widget) reload(ctx context.Context) {
	rctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	price, ok, err := w.source.Float(rctx, consts.BenchmarkPriceKey)
	if err != nil {
		w.logger.Warn("widget: read benchmark failed", slog.Any("err", err))
		return
	}

	w.mu.Lock()
	w.entry = widgetEntry{Price: price, OK: ok, LoadedAt: w.now()}
	w.mu.Unlock()
	w.logger.Debug("widget: entry reloaded", slog.Bool("ok", ok), slog.Float64("price", price))
}

func (w *widget) current() widgetEntry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.entry
}
