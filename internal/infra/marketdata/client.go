package marketdata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultUserAgent = "crypto-portfolio-service/1.0 (+https://github.com/NastyaGoryachaya/crypto-portfolio-service)"

// Config - общие настройки HTTP-клиента провайдера
type Config struct {
	Timeout       time.Duration
	UserAgent     string
	RatePerMinute int
}

// Client - HTTP-клиент для публичных API курсов: таймаут, лимит запросов и разбор JSON.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	logger     *slog.Logger
}

// NewClient - создаёт клиента. RatePerMinute <= 0 отключает ограничение.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RatePerMinute)), 1)
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
		userAgent:  ua,
		logger:     logger,
	}
}

// GetJSON - выполняет GET и декодирует тело в out.
// Ошибки: ErrNetwork (транспорт или статус != 2xx), ErrEmptyResponse, ErrDecode.
func (c *Client) GetJSON(ctx context.Context, rawURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %w", ErrNetwork, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("market data request",
		slog.String("url", req.URL.Redacted()),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(started)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: request failed: %s", ErrNetwork, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading body: %w", ErrNetwork, err)
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ErrEmptyResponse
	}
	// null молча превращается в нулевое значение, это не тот ответ, который ждали
	if bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("%w: null body", ErrDecode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
