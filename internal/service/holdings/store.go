package holdings

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"github.com/google/uuid"
)

// Listener - получает копию позиций после каждого успешного изменения портфеля
type Listener interface {
	HoldingsChanged(ctx context.Context, items []domain.Holding)
}

// ListenerFunc - адаптер функции к Listener
type ListenerFunc func(ctx context.Context, items []domain.Holding)

func (f ListenerFunc) HoldingsChanged(ctx context.Context, items []domain.Holding) { f(ctx, items) }

// Repository - долговременное хранение позиций (опционально)
type Repository interface {
	Load(ctx context.Context) ([]domain.Holding, error)
	Save(ctx context.Context, items []domain.Holding) error
}

type subscription struct {
	id int
	l  Listener
}

// Store - единственный источник правды о том, чем владеет пользователь.
// На каждую монету (CoinID) приходится не больше одной позиции.
type Store struct {
	// writeMu упорядочивает изменения вместе с уведомлениями,
	// поэтому слушатели не должны изменять портфель
	writeMu sync.Mutex
	mu      sync.RWMutex
	items   []domain.Holding

	subsMu sync.Mutex
	subs   []subscription
	nextID int

	newID  func() uuid.UUID
	now    func() time.Time
	logger *slog.Logger
}

// NewStore - пустой портфель
func NewStore(logger *slog.Logger) *Store {
	return &Store{
		newID:  uuid.New,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// Add - добавляет монету. Если позиция по coinID уже есть, количество суммируется,
// позиция и её ID сохраняются. Знак amount не проверяется, только конечность.
func (s *Store) Add(ctx context.Context, coinID, name, symbol string, amount float64) (domain.Holding, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return domain.Holding{}, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	h, merged := s.addLocked(coinID, name, symbol, amount)
	snapshot := slices.Clone(s.items)
	s.mu.Unlock()

	s.logger.Debug("holding added",
		slog.String("coin_id", coinID),
		slog.Float64("amount", amount),
		slog.Float64("total_amount", h.Amount),
		slog.Bool("merged", merged),
	)
	s.notify(ctx, snapshot)
	return h, nil
}

func (s *Store) addLocked(coinID, name, symbol string, amount float64) (domain.Holding, bool) {
	if i := slices.IndexFunc(s.items, func(h domain.Holding) bool { return h.CoinID == coinID }); i >= 0 {
		s.items[i].Amount += amount
		return s.items[i], true
	}
	h := domain.Holding{
		ID:         s.newID(),
		CoinID:     coinID,
		CoinName:   name,
		CoinSymbol: symbol,
		Amount:     amount,
		CreatedAt:  s.now(),
	}
	s.items = append(s.items, h)
	return h, false
}

// Remove - удаляет позиции по индексам текущего порядка. Повторы схлопываются.
// Если хоть один индекс вне диапазона, ничего не удаляется.
func (s *Store) Remove(ctx context.Context, positions ...int) error {
	if len(positions) == 0 {
		return nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	drop := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(s.items) {
			n := len(s.items)
			s.mu.Unlock()
			return fmt.Errorf("%w: %d (holdings: %d)", ErrPositionOutOfRange, p, n)
		}
		drop[p] = struct{}{}
	}
	kept := make([]domain.Holding, 0, len(s.items)-len(drop))
	for i, h := range s.items {
		if _, ok := drop[i]; !ok {
			kept = append(kept, h)
		}
	}
	s.items = kept
	snapshot := slices.Clone(s.items)
	s.mu.Unlock()

	s.logger.Debug("holdings removed", slog.Int("count", len(drop)), slog.Int("left", len(snapshot)))
	s.notify(ctx, snapshot)
	return nil
}

// List - копия позиций в порядке добавления
func (s *Store) List() []domain.Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Restore - заменяет содержимое портфеля данными репозитория.
// Повторяющиеся coinID из хранилища сливаются по тем же правилам, что и Add.
func (s *Store) Restore(ctx context.Context, repo Repository) error {
	items, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load holdings: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.items = nil
	for _, h := range items {
		if i := slices.IndexFunc(s.items, func(x domain.Holding) bool { return x.CoinID == h.CoinID }); i >= 0 {
			s.items[i].Amount += h.Amount
			continue
		}
		s.items = append(s.items, h)
	}
	n := len(s.items)
	s.mu.Unlock()

	s.logger.Info("holdings restored", slog.Int("count", n))
	return nil
}

// Subscribe - подписка на изменения. Возвращает функцию отписки.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.subsMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, l: l})
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		s.subs = slices.DeleteFunc(s.subs, func(sub subscription) bool { return sub.id == id })
	}
}

// notify - слушатели вызываются синхронно, вне блокировки портфеля
func (s *Store) notify(ctx context.Context, snapshot []domain.Holding) {
	s.subsMu.Lock()
	subs := slices.Clone(s.subs)
	s.subsMu.Unlock()

	for _, sub := range subs {
		sub.l.HoldingsChanged(ctx, slices.Clone(snapshot))
	}
}
