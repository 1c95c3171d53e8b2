package httptransport

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"github.com/labstack/echo/v4"
)

//go:generate mockgen -source=market.go -destination=mocks/market_mocks.go -package=mocks

// MarketService - рыночные данные провайдера.
type MarketService interface {
	Tickers(ctx context.Context) ([]domain.Ticker, error)
	Coin(ctx context.Context, id string) (domain.CoinDetail, error)
	Exchanges(ctx context.Context) ([]domain.Exchange, error)
	Exchange(ctx context.Context, id string) (domain.ExchangeDetail, error)
	Global(ctx context.Context) (domain.GlobalStats, error)
}

// MarketHandler - HTTP‑handler для тикеров, монет, бирж и глобальной статистики.
type MarketHandler struct {
	logger  *slog.Logger
	svc     MarketService
	timeout time.Duration
}

func NewMarketHandler(logger *slog.Logger, svc MarketService, timeout time.Duration) *MarketHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	if timeout <= 0 {
		timeout = time.Second * 5
	}
	return &MarketHandler{logger: logger, svc: svc, timeout: timeout}
}

func (h *MarketHandler) RegisterRoutes(r Router) {
	r.GET("/tickers", h.GetTickers)
	r.GET("/coins/:id", h.GetCoin)
	r.GET("/exchanges", h.GetExchanges)
	r.GET("/exchanges/:id", h.GetExchange)
	r.GET("/global", h.GetGlobal)
}

func (h *MarketHandler) GetTickers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.svc.Tickers(ctx)
	if err != nil {
		return writeError(c, h.logger, "GetTickers", err)
	}
	out := make([]Ticker, 0, len(items))
	for _, t := range items {
		out = append(out, makeTicker(t))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MarketHandler) GetCoin(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return badRequest(c, "id_required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	d, err := h.svc.Coin(ctx, id)
	if err != nil {
		return writeError(c, h.logger, "GetCoin", err)
	}
	return c.JSON(http.StatusOK, CoinDetail{
		ID:          d.ID,
		Name:        d.Name,
		Symbol:      d.Symbol,
		Description: d.Description,
	})
}

func (h *MarketHandler) GetExchanges(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.svc.Exchanges(ctx)
	if err != nil {
		return writeError(c, h.logger, "GetExchanges", err)
	}
	out := make([]Exchange, 0, len(items))
	for _, e := range items {
		out = append(out, makeExchange(e))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MarketHandler) GetExchange(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return badRequest(c, "id_required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	d, err := h.svc.Exchange(ctx, id)
	if err != nil {
		return writeError(c, h.logger, "GetExchange", err)
	}
	return c.JSON(http.StatusOK, makeExchangeDetail(d))
}

func (h *MarketHandler) GetGlobal(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	g, err := h.svc.Global(ctx)
	if err != nil {
		return writeError(c, h.logger, "GetGlobal", err)
	}
	return c.JSON(http.StatusOK, GlobalStats{
		MarketCap:              Number(g.MarketCap),
		Volume24h:              Number(g.Volume24h),
		BitcoinDominancePct:    Number(g.BitcoinDominancePct),
		CryptocurrenciesNumber: g.CryptocurrenciesNumber,
	})
}
