package scheduler_dispatcher

import (
	"context"
	"log/slog"
	"time"
)

// Dispatcher - одна итерация авторассылки
type Dispatcher interface {
	DispatchDue(ctx context.Context) (sent int, err error)
}

type Scheduler struct {
	svc         Dispatcher
	checkPeriod time.Duration
	logger      *slog.Logger
}

func NewScheduler(svc Dispatcher, period time.Duration, logger *slog.Logger) *Scheduler {
	if period <= 0 {
		period = time.Minute
	}
	logger.Debug("subscription scheduler configured", slog.Duration("period", period))
	return &Scheduler{svc: svc, checkPeriod: period, logger: logger}
}

// Run - основной цикл: раз в checkPeriod проверяем, кому пора отправить отчёт.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("subscription scheduler started", slog.Duration("period", s.checkPeriod))
	t := time.NewTicker(s.checkPeriod)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("subscription scheduler stopped")
			return
		case <-t.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	started := time.Now()
	sent, err := s.svc.DispatchDue(ctx)
	if err != nil {
		s.logger.Warn("tick: dispatch failed", slog.String("err", err.Error()))
		return
	}
	s.logger.Debug("tick: dispatch completed", slog.Int("sent", sent), slog.Duration("duration", time.Since(started)))
}
