package httptransport

import (
	"context"
	"log"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/consts"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/service/valuation"
	"github.com/labstack/echo/v4"
)

//go:generate mockgen -source=portfolio.go -destination=mocks/portfolio_mocks.go -package=mocks

const maxTrendPoints = 365

// HoldingsStore - позиции портфеля.
type HoldingsStore interface {
	Add(ctx context.Context, coinID, name, symbol string, amount float64) (domain.Holding, error)
	Remove(ctx context.Context, positions ...int) error
	List() []domain.Holding
}

// Valuator - снимок оценки портфеля.
type Valuator interface {
	Refresh(ctx context.Context) (domain.Valuation, error)
	Current() (domain.Valuation, bool)
}

// TrendSynthesizer - синтетический ряд стоимости.
type TrendSynthesizer interface {
	Synthesize(total float64, n int) []domain.TrendPoint
}

// BenchmarkReader - общее хранилище, куда провайдер пишет цену эталонной монеты.
type BenchmarkReader interface {
	Float(ctx context.Context, key string) (float64, bool, error)
}

// PortfolioHandler - HTTP‑handler для портфеля.
type PortfolioHandler struct {
	logger      *slog.Logger
	holdings    HoldingsStore
	valuation   Valuator
	trend       TrendSynthesizer
	benchmark   BenchmarkReader
	currency    string
	trendPoints int
	timeout     time.Duration
}

type PortfolioDeps struct {
	Holdings    HoldingsStore
	Valuation   Valuator
	Trend       TrendSynthesizer
	Benchmark   BenchmarkReader
	Currency    string
	TrendPoints int
}

func NewPortfolioHandler(logger *slog.Logger, deps PortfolioDeps, timeout time.Duration) *PortfolioHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if deps.Holdings == nil || deps.Valuation == nil || deps.Trend == nil || deps.Benchmark == nil {
		log.Fatal("nil service")
	}
	if timeout <= 0 {
		timeout = time.Second * 5
	}
	return &PortfolioHandler{
		logger:      logger,
		holdings:    deps.Holdings,
		valuation:   deps.Valuation,
		trend:       deps.Trend,
		benchmark:   deps.Benchmark,
		currency:    deps.Currency,
		trendPoints: deps.TrendPoints,
		timeout:     timeout,
	}
}

func (h *PortfolioHandler) RegisterRoutes(r Router) {
	r.GET("/portfolio/holdings", h.ListHoldings)
	r.POST("/portfolio/holdings", h.AddHolding)
	r.DELETE("/portfolio/holdings", h.RemoveHoldings)
	r.POST("/portfolio/refresh", h.Refresh)
	r.GET("/portfolio/valuation", h.GetValuation)
	r.GET("/portfolio/trend", h.GetTrend)
	r.GET("/benchmark", h.GetBenchmark)
}

func (h *PortfolioHandler) ListHoldings(c echo.Context) error {
	return c.JSON(http.StatusOK, makeHoldings(h.holdings.List()))
}

func (h *PortfolioHandler) AddHolding(c echo.Context) error {
	var req AddHoldingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid_body")
	}
	req.CoinID = strings.TrimSpace(req.CoinID)
	if req.CoinID == "" {
		return badRequest(c, "coin_id_required")
	}
	// в портфель добавляются только положительные количества
	if req.Amount == nil || math.IsNaN(*req.Amount) || math.IsInf(*req.Amount, 0) || *req.Amount <= 0 {
		return badRequest(c, "amount_must_be_positive")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	added, err := h.holdings.Add(ctx, req.CoinID, strings.TrimSpace(req.CoinName), strings.TrimSpace(req.CoinSymbol), *req.Amount)
	if err != nil {
		return writeError(c, h.logger, "AddHolding", err)
	}

	pos := 0
	for i, item := range h.holdings.List() {
		if item.ID == added.ID {
			pos = i
			break
		}
	}
	return c.JSON(http.StatusCreated, makeHolding(pos, added))
}

// RemoveHoldings - DELETE /portfolio/holdings?pos=0&pos=2
func (h *PortfolioHandler) RemoveHoldings(c echo.Context) error {
	raw := c.QueryParams()["pos"]
	if len(raw) == 0 {
		return badRequest(c, "pos_required")
	}
	positions := make([]int, 0, len(raw))
	for _, p := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return badRequest(c, "invalid_pos")
		}
		positions = append(positions, n)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.holdings.Remove(ctx, positions...); err != nil {
		return writeError(c, h.logger, "RemoveHoldings", err)
	}
	return c.JSON(http.StatusOK, makeHoldings(h.holdings.List()))
}

func (h *PortfolioHandler) Refresh(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	v, err := h.valuation.Refresh(ctx)
	if err != nil {
		return writeError(c, h.logger, "Refresh", err)
	}
	return c.JSON(http.StatusOK, makeValuation(v))
}

func (h *PortfolioHandler) GetValuation(c echo.Context) error {
	v, ok := h.valuation.Current()
	if !ok {
		return writeError(c, h.logger, "GetValuation", valuation.ErrNotLoaded)
	}
	return c.JSON(http.StatusOK, makeValuation(v))
}

// GetTrend - GET /portfolio/trend?points=7
func (h *PortfolioHandler) GetTrend(c echo.Context) error {
	n := h.trendPoints
	if raw := strings.TrimSpace(c.QueryParam("points")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxTrendPoints {
			return badRequest(c, "invalid_points")
		}
		n = v
	}

	v, ok := h.valuation.Current()
	if !ok {
		return writeError(c, h.logger, "GetTrend", valuation.ErrNotLoaded)
	}
	return c.JSON(http.StatusOK, makeTrend(v.Currency, h.trend.Synthesize(v.Total, n)))
}

func (h *PortfolioHandler) GetBenchmark(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	price, ok, err := h.benchmark.Float(ctx, consts.BenchmarkPriceKey)
	if err != nil {
		return writeError(c, h.logger, "GetBenchmark", err)
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "benchmark_not_found",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"key":      consts.BenchmarkPriceKey,
		"price":    Number(price),
		"display":  money(&price),
		"currency": h.currency,
	})
}
