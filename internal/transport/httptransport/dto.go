package httptransport

import (
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"github.com/google/uuid"
)

// Ticker - DTO тикера. Неизвестные значения не выводятся.
type Ticker struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Symbol           string  `json:"symbol"`
	Rank             *int    `json:"rank,omitempty"`
	Price            *Number `json:"price,omitempty"`
	Volume24h        *Number `json:"volume_24h,omitempty"`
	MarketCap        *Number `json:"market_cap,omitempty"`
	PercentChange24h *Number `json:"percent_change_24h,omitempty"`
}

func makeTicker(t domain.Ticker) Ticker {
	return Ticker{
		ID:               t.ID,
		Name:             t.Name,
		Symbol:           t.Symbol,
		Rank:             t.Rank,
		Price:            num(t.Price),
		Volume24h:        num(t.Volume24h),
		MarketCap:        num(t.MarketCap),
		PercentChange24h: num(t.PercentChange24h),
	}
}

type CoinDetail struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Description *string `json:"description,omitempty"`
}

type Exchange struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Country    *string `json:"country,omitempty"`
	WebsiteURL *string `json:"website_url,omitempty"`
	Logo       *string `json:"logo,omitempty"`
	Volume24h  *Number `json:"volume_24h,omitempty"`
}

func makeExchange(e domain.Exchange) Exchange {
	return Exchange{
		ID:         e.ID,
		Name:       e.Name,
		Country:    e.Country,
		WebsiteURL: e.WebsiteURL,
		Logo:       e.Logo,
		Volume24h:  num(e.Volume24h),
	}
}

type ExchangeDetail struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	YearEstablished     *int    `json:"year_established,omitempty"`
	Country             *string `json:"country,omitempty"`
	Description         *string `json:"description,omitempty"`
	URL                 *string `json:"url,omitempty"`
	Image               *string `json:"image,omitempty"`
	TwitterHandle       *string `json:"twitter_handle,omitempty"`
	RedditURL           *string `json:"reddit_url,omitempty"`
	TelegramURL         *string `json:"telegram_url,omitempty"`
	HasTradingIncentive *bool   `json:"has_trading_incentive,omitempty"`
	TradeVolume24hBTC   *Number `json:"trade_volume_24h_btc,omitempty"`
}

func makeExchangeDetail(d domain.ExchangeDetail) ExchangeDetail {
	return ExchangeDetail{
		ID:                  d.ID,
		Name:                d.Name,
		YearEstablished:     d.YearEstablished,
		Country:             d.Country,
		Description:         d.Description,
		URL:                 d.URL,
		Image:               d.Image,
		TwitterHandle:       d.TwitterHandle,
		RedditURL:           d.RedditURL,
		TelegramURL:         d.TelegramURL,
		HasTradingIncentive: d.HasTradingIncentive,
		TradeVolume24hBTC:   num(d.TradeVolume24hBTC),
	}
}

type GlobalStats struct {
	MarketCap              Number `json:"market_cap"`
	Volume24h              Number `json:"volume_24h"`
	BitcoinDominancePct    Number `json:"bitcoin_dominance_pct"`
	CryptocurrenciesNumber int    `json:"cryptocurrencies_number"`
}

// Holding - позиция портфеля. Position - индекс для удаления.
type Holding struct {
	Position   int       `json:"position"`
	ID         uuid.UUID `json:"id"`
	CoinID     string    `json:"coin_id"`
	CoinName   string    `json:"coin_name"`
	CoinSymbol string    `json:"coin_symbol"`
	Amount     Number    `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

func makeHolding(pos int, h domain.Holding) Holding {
	return Holding{
		Position:   pos,
		ID:         h.ID,
		CoinID:     h.CoinID,
		CoinName:   h.CoinName,
		CoinSymbol: h.CoinSymbol,
		Amount:     Number(h.Amount),
		CreatedAt:  h.CreatedAt,
	}
}

func makeHoldings(items []domain.Holding) []Holding {
	out := make([]Holding, 0, len(items))
	for i, h := range items {
		out = append(out, makeHolding(i, h))
	}
	return out
}

// HoldingValue - позиция с ценой. price/value всегда присутствуют, null = цены нет.
type HoldingValue struct {
	Holding
	Price        *Number `json:"price"`
	Value        *Number `json:"value"`
	ValueDisplay string  `json:"value_display"`
}

type Valuation struct {
	Currency     string            `json:"currency"`
	Total        Number            `json:"total"`
	TotalDisplay string            `json:"total_display"`
	Unpriced     int               `json:"unpriced"`
	Prices       map[string]Number `json:"prices"`
	Holdings     []HoldingValue    `json:"holdings"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func makeValuation(v domain.Valuation) Valuation {
	total := v.Total
	out := Valuation{
		Currency:     v.Currency,
		Total:        Number(total),
		TotalDisplay: money(&total),
		Unpriced:     v.Unpriced(),
		Prices:       make(map[string]Number, len(v.Prices)),
		Holdings:     make([]HoldingValue, 0, len(v.Holdings)),
		UpdatedAt:    v.UpdatedAt,
	}
	for id, p := range v.Prices {
		out.Prices[id] = Number(p)
	}
	for i, h := range v.Holdings {
		out.Holdings = append(out.Holdings, HoldingValue{
			Holding:      makeHolding(i, h.Holding),
			Price:        num(h.Price),
			Value:        num(h.Value),
			ValueDisplay: money(h.Value),
		})
	}
	return out
}

type TrendPoint struct {
	Date       string `json:"date"`
	TotalValue Number `json:"total_value"`
}

// Trend - ряд синтетический, это не история цен
type Trend struct {
	Synthetic bool         `json:"synthetic"`
	Currency  string       `json:"currency"`
	Points    []TrendPoint `json:"points"`
}

func makeTrend(currency string, points []domain.TrendPoint) Trend {
	out := Trend{Synthetic: true, Currency: currency, Points: make([]TrendPoint, 0, len(points))}
	for _, p := range points {
		out.Points = append(out.Points, TrendPoint{
			Date:       p.Date.Format(time.DateOnly),
			TotalValue: Number(p.TotalValue),
		})
	}
	return out
}

// AddHoldingRequest - тело POST /portfolio/holdings
type AddHoldingRequest struct {
	CoinID     string   `json:"coin_id"`
	CoinName   string   `json:"coin_name"`
	CoinSymbol string   `json:"coin_symbol"`
	Amount     *float64 `json:"amount"`
}
