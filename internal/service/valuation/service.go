package valuation

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// TickerProvider - внешний источник тикеров (CoinPaprika, CoinGecko)
type TickerProvider interface {
	FetchTickers(ctx context.Context) ([]domain.Ticker, error)
}

// HoldingsReader - текущие позиции портфеля
type HoldingsReader interface {
	List() []domain.Holding
}

// Service - держит последний снимок оценки портфеля.
// Снимок заменяется целиком, частично обновлённое состояние наружу не видно.
type Service struct {
	provider TickerProvider
	holdings HoldingsReader
	currency string
	clock    Clock
	logger   *slog.Logger

	mu       sync.RWMutex
	tickers  []domain.Ticker
	snapshot domain.Valuation
	loaded   bool
}

// NewService - конструктор сервиса оценки портфеля.
func NewService(provider TickerProvider, holdings HoldingsReader, currency string, logger *slog.Logger) *Service {
	return NewServiceWithClock(provider, holdings, currency, NewRealClock(), logger)
}

// NewServiceWithClock - Конструктор для тестов: позволяет подставить фиксированные "часы".
func NewServiceWithClock(provider TickerProvider, holdings HoldingsReader, currency string, clk Clock, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		holdings: holdings,
		currency: currency,
		clock:    clk,
		logger:   logger,
	}
}

// Refresh - получает тикеры, сверяет их с портфелем и заменяет снимок.
// Ошибка провайдера возвращается как есть, предыдущий снимок не трогается.
func (s *Service) Refresh(ctx context.Context) (domain.Valuation, error) {
	tickers, err := s.provider.FetchTickers(ctx)
	if err != nil {
		s.logger.Error("refresh prices", slog.Any("err", err))
		return domain.Valuation{}, fmt.Errorf("refresh prices: %w", err)
	}

	// позиции читаются под блокировкой снимка, чтобы не разминуться с HoldingsChanged
	s.mu.Lock()
	items := s.holdings.List()
	v := s.build(items, tickers)
	s.tickers = tickers
	s.snapshot = v
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("portfolio valued",
		slog.Int("tickers", len(tickers)),
		slog.Int("holdings", len(items)),
		slog.Int("unpriced", v.Unpriced()),
		slog.Float64("total", v.Total),
	)
	return cloneValuation(v), nil
}

// Current - последний снимок. false, если цены ещё не загружались.
func (s *Service) Current() (domain.Valuation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return domain.Valuation{}, false
	}
	return cloneValuation(s.snapshot), true
}

// HoldingsChanged - пересчёт снимка по уже полученным тикерам после изменения портфеля
func (s *Service) HoldingsChanged(_ context.Context, items []domain.Holding) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return
	}
	updated := Reconcile(items, s.tickers)
	updated.Currency = s.currency
	updated.UpdatedAt = s.snapshot.UpdatedAt
	s.snapshot = updated
	s.logger.Debug("valuation recomputed", slog.Int("holdings", len(items)), slog.Float64("total", updated.Total))
}

func (s *Service) build(items []domain.Holding, tickers []domain.Ticker) domain.Valuation {
	v := Reconcile(items, tickers)
	v.Currency = s.currency
	v.UpdatedAt = s.clock.Now()
	return v
}

func cloneValuation(v domain.Valuation) domain.Valuation {
	out := v
	out.Holdings = slices.Clone(v.Holdings)
	out.Prices = make(domain.PriceTable, len(v.Prices))
	for k, p := range v.Prices {
		out.Prices[k] = p
	}
	return out
}
