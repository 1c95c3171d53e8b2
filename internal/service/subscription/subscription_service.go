package subscription

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/pkg/botfmt"
)

// Repository - хранение подписок чатов на отчёт по портфелю
type Repository interface {
	FindDue(ctx context.Context, now time.Time) ([]int64, error)
	MarkSent(ctx context.Context, chatID int64, at time.Time) error
	MarkEnabled(ctx context.Context, chatID int64, intervalMinutes int) error
	MarkDisabled(ctx context.Context, chatID int64) error
}

// PortfolioReader - текущая оценка портфеля
type PortfolioReader interface {
	Valuation(ctx context.Context) (domain.Valuation, error)
}

// Sender - отправка текста в чат
type Sender interface {
	SendText(chatID int64, text string) error
}

// Service - команды управления подпиской
type Service struct {
	repo Repository
	log  *slog.Logger
}

func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Enable включает авторассылку для чата.
// Идемпотентна: повторный вызов с теми же параметрами безопасен.
func (s *Service) Enable(ctx context.Context, chatID int64, intervalMinutes int) error {
	if intervalMinutes <= 0 {
		return ErrInvalidInterval
	}
	if err := s.repo.MarkEnabled(ctx, chatID, intervalMinutes); err != nil {
		s.log.Error("subscriptions.enable failed",
			slog.Int64("chat_id", chatID),
			slog.Int("interval_min", intervalMinutes),
			slog.String("err", err.Error()))
		return fmt.Errorf("enable subscription: %w", err)
	}
	s.log.Info("subscriptions.enable ok",
		slog.Int64("chat_id", chatID),
		slog.Int("interval_min", intervalMinutes))
	return nil
}

// Disable отключает авторассылку для чата.
// Если уже выключена, ошибки нет.
func (s *Service) Disable(ctx context.Context, chatID int64) error {
	if err := s.repo.MarkDisabled(ctx, chatID); err != nil {
		s.log.Error("subscriptions.disable failed",
			slog.Int64("chat_id", chatID),
			slog.String("err", err.Error()))
		return fmt.Errorf("disable subscription: %w", err)
	}
	s.log.Info("subscriptions.disable ok", slog.Int64("chat_id", chatID))
	return nil
}

// Dispatcher - рассылка отчёта по портфелю подписанным чатам
type Dispatcher struct {
	repo      Repository
	portfolio PortfolioReader
	sender    Sender
	now       func() time.Time
	log       *slog.Logger
	timeout   time.Duration
}

func NewDispatcher(repo Repository, portfolio PortfolioReader, sender Sender, log *slog.Logger) *Dispatcher {
	return NewDispatcherWithClock(repo, portfolio, sender, time.Now, log)
}

// NewDispatcherWithClock - для тестов
func NewDispatcherWithClock(repo Repository, portfolio PortfolioReader, sender Sender, now func() time.Time, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		repo:      repo,
		portfolio: portfolio,
		sender:    sender,
		now:       now,
		log:       log,
		timeout:   4 * time.Second,
	}
}

// DispatchDue выполняет одну итерацию авторассылки:
//  1. Находит чаты, у которых истёк интервал (due).
//  2. Берёт текущую оценку портфеля.
//  3. Отправляет отчёт каждому due-чату и отмечает отправку.
//
// Возвращает количество успешно отправленных сообщений.
func (d *Dispatcher) DispatchDue(ctx context.Context) (sent int, err error) {
	now := d.now()
	d.log.Debug("subscriptions.loading_due", slog.Time("now", now))

	chatIDs, err := d.repo.FindDue(ctx, now)
	if err != nil {
		d.log.Error("subscriptions.find_due failed", slog.String("err", err.Error()))
		return 0, fmt.Errorf("find due subscriptions: %w", err)
	}
	if len(chatIDs) == 0 {
		d.log.Debug("subscriptions.no_due")
		return 0, nil
	}

	vCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	v, err := d.portfolio.Valuation(vCtx)
	if err != nil {
		// last_sent_at не двигаем: чат получит отчёт, когда цены появятся
		return 0, fmt.Errorf("portfolio valuation: %w", err)
	}
	msg := botfmt.FormatPortfolio(v)

	for _, chatID := range chatIDs {
		if err := d.sender.SendText(chatID, msg); err != nil {
			d.log.Error("subscriptions.send failed",
				slog.Int64("chat_id", chatID),
				slog.String("err", err.Error()))
			continue
		}
		if err := d.repo.MarkSent(ctx, chatID, now); err != nil {
			d.log.Error("subscriptions.mark_sent failed",
				slog.Int64("chat_id", chatID),
				slog.String("err", err.Error()))
			continue
		}
		sent++
	}
	d.log.Info("subscriptions.dispatch_done",
		slog.Int("due", len(chatIDs)),
		slog.Int("sent", sent))
	return sent, nil
}
