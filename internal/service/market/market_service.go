package market

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
)

//go:generate mockgen -source=market_service.go -destination=mocks/mocks.go -package=mocks

// ErrEmptyID - пустой идентификатор монеты или биржи
var ErrEmptyID = errors.New("empty id")

// Provider - публичный API рыночных данных
type Provider interface {
	FetchTickers(ctx context.Context) ([]domain.Ticker, error)
	FetchCoinDetail(ctx context.Context, id string) (domain.CoinDetail, error)
	FetchExchanges(ctx context.Context) ([]domain.Exchange, error)
	FetchExchangeDetail(ctx context.Context, id string) (domain.ExchangeDetail, error)
	FetchGlobalStats(ctx context.Context) (domain.GlobalStats, error)
}

// Service - сквозной доступ к рыночным данным провайдера без кэширования
type Service struct {
	provider Provider
	logger   *slog.Logger
}

// NewService - конструктор сервиса рыночных данных.
func NewService(provider Provider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

func (s *Service) Tickers(ctx context.Context) ([]domain.Ticker, error) {
	items, err := s.provider.FetchTickers(ctx)
	if err != nil {
		s.logger.Error("fetch tickers", slog.Any("err", err))
		return nil, fmt.Errorf("fetch tickers: %w", err)
	}
	return items, nil
}

func (s *Service) Coin(ctx context.Context, id string) (domain.CoinDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.CoinDetail{}, ErrEmptyID
	}
	d, err := s.provider.FetchCoinDetail(ctx, id)
	if err != nil {
		s.logger.Error("fetch coin detail", slog.String("id", id), slog.Any("err", err))
		return domain.CoinDetail{}, fmt.Errorf("fetch coin %s: %w", id, err)
	}
	return d, nil
}

func (s *Service) Exchanges(ctx context.Context) ([]domain.Exchange, error) {
	items, err := s.provider.FetchExchanges(ctx)
	if err != nil {
		s.logger.Error("fetch exchanges", slog.Any("err", err))
		return nil, fmt.Errorf("fetch exchanges: %w", err)
	}
	return items, nil
}

// Exchange - карточка биржи. Не все провайдеры её поддерживают.
func (s *Service) Exchange(ctx context.Context, id string) (domain.ExchangeDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ExchangeDetail{}, ErrEmptyID
	}
	d, err := s.provider.FetchExchangeDetail(ctx, id)
	if err != nil {
		s.logger.Warn("fetch exchange detail", slog.String("id", id), slog.Any("err", err))
		return domain.ExchangeDetail{}, fmt.Errorf("fetch exchange %s: %w", id, err)
	}
	return d, nil
}

func (s *Service) Global(ctx context.Context) (domain.GlobalStats, error) {
	g, err := s.provider.FetchGlobalStats(ctx)
	if err != nil {
		s.logger.Error("fetch global stats", slog.Any("err", err))
		return domain.GlobalStats{}, fmt.Errorf("fetch global stats: %w", err)
	}
	return g, nil
}
