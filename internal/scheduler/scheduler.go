package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
)

// Refresher - обновление цен и оценки портфеля
type Refresher interface {
	Refresh(ctx context.Context) (domain.Valuation, error)
}

type Scheduler struct {
	refresher Refresher
	interval  time.Duration
	logger    *slog.Logger
}

// NewScheduler - конструктор планировщика фонового обновления цен
func NewScheduler(refresher Refresher, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
	}
}

// Start - запускает периодическое обновление до остановки контекста
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// первый запуск сразу
	s.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		}
	}
}

// runOnce - одна итерация: получить тикеры и пересчитать портфель.
// Ошибка только логируется, прошлый снимок остаётся.
func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	started := time.Now()
	v, err := s.refresher.Refresh(ctx)
	if err != nil {
		s.logger.Error("tick: refresh failed", slog.Any("err", err))
		return
	}
	s.logger.Debug("tick: refresh completed",
		slog.Float64("total", v.Total),
		slog.Int("unpriced", v.Unpriced()),
		slog.Duration("duration", time.Since(started)),
	)
}
