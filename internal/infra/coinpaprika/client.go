package coinpaprika

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/infra/marketdata"
)

const DefaultBaseURL = "https://api.coinpaprika.com"

type Config struct {
	BaseURL  string
	Currency string // CAD, USD ...
}

// Client - клиент публичного API CoinPaprika (/v1)
type Client struct {
	cfg       Config
	http      *marketdata.Client
	benchmark *marketdata.Benchmark
	logger    *slog.Logger
}

// NewClient - benchmark может быть nil
func NewClient(cfg Config, httpClient *marketdata.Client, benchmark *marketdata.Benchmark, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.Currency = strings.ToUpper(cfg.Currency)
	return &Client{cfg: cfg, http: httpClient, benchmark: benchmark, logger: logger}
}

func (c *Client) endpoint(query url.Values, elem ...string) (string, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	u = u.JoinPath(append([]string{"v1"}, elem...)...)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// FetchTickers - GET /v1/tickers?quotes=<CUR>
func (c *Client) FetchTickers(ctx context.Context) ([]domain.Ticker, error) {
	u, err := c.endpoint(url.Values{"quotes": {c.cfg.Currency}}, "tickers")
	if err != nil {
		return nil, err
	}

	var data []tickerResponse
	if err := c.http.GetJSON(ctx, u, &data); err != nil {
		c.logger.Error("coinpaprika: fetch tickers", slog.Any("err", err))
		return nil, fmt.Errorf("fetch tickers: %w", err)
	}

	out := make([]domain.Ticker, 0, len(data))
	for i, d := range data {
		t, err := d.toDomain(c.cfg.Currency)
		if err != nil {
			return nil, fmt.Errorf("fetch tickers: item %d: %w", i, err)
		}
		out = append(out, t)
	}
	c.logger.Debug("coinpaprika: tickers fetched", slog.Int("count", len(out)))

	c.benchmark.Record(ctx, out)
	return out, nil
}

// FetchCoinDetail - GET /v1/coins/{id}
func (c *Client) FetchCoinDetail(ctx context.Context, id string) (domain.CoinDetail, error) {
	u, err := c.endpoint(nil, "coins", id)
	if err != nil {
		return domain.CoinDetail{}, err
	}
	var data coinDetailResponse
	if err := c.http.GetJSON(ctx, u, &data); err != nil {
		return domain.CoinDetail{}, fmt.Errorf("fetch coin detail %s: %w", id, err)
	}
	return data.toDomain()
}

// FetchExchanges - GET /v1/exchanges
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

// FetchExchangeDetail - у CoinPaprika нет отдельной карточки биржи в этом клиенте
func (c *Client) FetchExchangeDetail(_ context.Context, id string) (domain.ExchangeDetail, error) {
	return domain.ExchangeDetail{}, fmt.Errorf("coinpaprika exchange %s: %w", id, marketdata.ErrUnsupported)
}

// FetchGlobalStats - GET /v1/global
func (c *Client) FetchGlobalStats(ctx context.Context) (domain.GlobalStats, error) {
	u, err := c.endpoint(nil, "global")
	if err != nil {
		return domain.GlobalStats{}, err
	}
	var data globalResponse
	if err := c.http.GetJSON(ctx, u, &data); err != nil {
		return domain.GlobalStats{}, fmt.Errorf("fetch global stats: %w", err)
	}
	return data.toDomain()
}
