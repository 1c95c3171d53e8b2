package coingecko

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/infra/marketdata"
)

const DefaultBaseURL = "https://api.coingecko.com/api/v3"

type Config struct {
	BaseURL  string
	Currency string
}

// Client - клиент для работы с API CoinGecko
type Client struct {
	cfg       Config
	http      *marketdata.Client
	benchmark *marketdata.Benchmark
	logger    *slog.Logger
}

// NewClient - Создаёт нового клиента для работы с API CoinGecko.
func NewClient(cfg Config, httpClient *marketdata.Client, benchmark *marketdata.Benchmark, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.Currency = strings.ToLower(cfg.Currency)
	return &Client{cfg: cfg, http: httpClient, benchmark: benchmark, logger: logger}
}

func (c *Client) endpoint(query url.Values, elem ...string) (string, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	u = u.JoinPath(elem...)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// FetchTickers - GET /coins/markets?vs_currency=<cur>
func (c *Client) FetchTickers(ctx context.Context) ([]domain.Ticker, error) {
	u, err := c.endpoint(url.Values{"vs_currency": {c.cfg.Currency}}, "coins", "markets")
	if err != nil {
		return nil, err
	}

	var data []marketResponse
	if err := c.http.GetJSON(ctx, u, &data); err != nil {
		c.logger.Error("coingecko: fetch markets", slog.Any("err", err))
		return nil, fmt.Errorf("fetch tickers: %w", err)
	}

	result := make([]domain.Ticker, 0, len(data))
	for i, d := range data {
		t, err := d.toDomain()
		if err != nil {
			return nil, fmt.Errorf("fetch tickers: item %d: %w", i, err)
		}
		result = append(result, t)
	}
	c.logger.Debug("coingecko: tickers fetched", slog.Int("count", len(result)))

	c.benchmark.Record(ctx, result)
	return result, nil
}

// FetchCoinDetail - GET /coins/{id} без локализаций, тикеров и community-данных
func (c *Client) FetchCoinDetail(ctx context.Context, id string) (domain.CoinDetail, error) {
	q := url.Values{}
	q.Set("localization", "false")
	q.Set("tickers", "false")
	q.Set("market_data", "true")
	q.Set("community_data", "false")
	q.Set("developer_data", "false")
	u, err := c.endpoint(q, "coins", id)
	if err != nil {
		return domain.CoinDetail{}, err
	}

	var data coinDetailResponse
	if err := c.http.GetJSON(ctx, u, &data); err != nil {
		return domain.CoinDetail{}, fmt.Errorf("fetch coin detail %s: %w", id, err)
	}
	return data.toDomain()
}

// FetchExchanges - GET /exchanges
func (c *Client) FetchExchanges(ctx context.Context) ([]domain.Exchange, error) {
	u, err := c.endpoint(nil, "exchanges")
	if err != nil {
		return nil, err
	}
	var data []exchangeResponse
	if err := c.http.GetJSON(ctx, u, &data); err != nil {
		return nil, fmt.Errorf("fetch exchanges: %w", err)
	}
	out := make([]domain.Exchange, 0, len(data))
	for i, d := range data {
		e, err := d.toDomain()
		if err != nil {
			return nil, fmt.Errorf("fetch exchanges: item %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// FetchExchangeDetail - GET /exchanges/{id}
func (c *Client) FetchExchangeDetail(ctx context.Context, id string) (domain.ExchangeDetail, error) {
	u, err := c.endpoint(nil, "exchanges", id)
	if err != nil {
		return domain.ExchangeDetail{}, err
	}
	var data exchangeDetailResponse
	if err := c.http.GetJSON(ctx, u, &data); err != nil {
		return domain.ExchangeDetail{}, fmt.Errorf("fetch exchange %s: %w", id, err)
	}
	d, err := data.toDomain()
	if err != nil {
		return domain.ExchangeDetail{}, err
	}
	if d.ID == "" {
		d.ID = id
	}
	return d, nil
}

// FetchGlobalStats - GET /global, значения берутся в валюте клиента
func (c *Client) FetchGlobalStats(ctx context.Context) (domain.GlobalStats, error) {
	u, err := c.endpoint(nil, "global")
	if err != nil {
		return domain.GlobalStats{}, err
	}
	var data globalResponse
	if err := c.http.GetJSON(ctx, u, &data); err != nil {
		return domain.GlobalStats{}, fmt.Errorf("fetch global stats: %w", err)
	}
	return data.toDomain(c.cfg.Currency)
}
