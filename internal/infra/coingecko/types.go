package coingecko

import (
	"fmt"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	md "github.com/NastyaGoryachaya/crypto-portfolio-service/internal/infra/marketdata"
)

// marketResponse - элемент ответа /coins/markets, числовые поля у CoinGecko необязательные
type marketResponse struct {
	ID                       *string  `json:"id"`
	Symbol                   *string  `json:"symbol"`
	Name                     *string  `json:"name"`
	Image                    *string  `json:"image"`
	CurrentPrice             *float64 `json:"current_price"`
	MarketCap                *float64 `json:"market_cap"`
	TotalVolume              *float64 `json:"total_volume"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	MarketCapRank            *int     `json:"market_cap_rank"`
}

func (r marketResponse) toDomain() (domain.Ticker, error) {
	var t domain.Ticker
	var err error
	if t.ID, err = md.Required("id", r.ID); err != nil {
		return domain.Ticker{}, err
	}
	if t.Symbol, err = md.Required("symbol", r.Symbol); err != nil {
		return domain.Ticker{}, err
	}
	if t.Name, err = md.Required("name", r.Name); err != nil {
		return domain.Ticker{}, err
	}
	t.Rank = r.MarketCapRank
	t.Price = r.CurrentPrice
	t.Volume24h = r.TotalVolume
	t.MarketCap = r.MarketCap
	t.PercentChange24h = r.PriceChangePercentage24h
	return t, nil
}

type coinDetailResponse struct {
	ID          *string `json:"id"`
	Symbol      *string `json:"symbol"`
	Name        *string `json:"name"`
	Description *struct {
		En *string `json:"en"`
	} `json:"description"`
}

func (r coinDetailResponse) toDomain() (domain.CoinDetail, error) {
	var d domain.CoinDetail
	var err error
	if d.ID, err = md.Required("id", r.ID); err != nil {
		return domain.CoinDetail{}, err
	}
	if d.Symbol, err = md.Required("symbol", r.Symbol); err != nil {
		return domain.CoinDetail{}, err
	}
	if d.Name, err = md.Required("name", r.Name); err != nil {
		return domain.CoinDetail{}, err
	}
	if r.Description != nil {
		d.Description = r.Description.En
	}
	return d, nil
}

type exchangeResponse struct {
	ID                *string  `json:"id"`
	Name              *string  `json:"name"`
	Country           *string  `json:"country"`
	URL               *string  `json:"url"`
	Image             *string  `json:"image"`
	TrustScoreRank    *int     `json:"trust_score_rank"`
	TradeVolume24hBTC *float64 `json:"trade_volume_24h_btc"`
}

func (r exchangeResponse) toDomain() (domain.Exchange, error) {
	var e domain.Exchange
	var err error
	if e.ID, err = md.Required("id", r.ID); err != nil {
		return domain.Exchange{}, err
	}
	if e.Name, err = md.Required("name", r.Name); err != nil {
		return domain.Exchange{}, err
	}
	e.Country = r.Country
	e.WebsiteURL = r.URL
	e.Logo = r.Image
	e.Volume24h = r.TradeVolume24hBTC
	return e, nil
}

type exchangeDetailResponse struct {
	ID                  *string  `json:"id"`
	Name                *string  `json:"name"`
	YearEstablished     *int     `json:"year_established"`
	Country             *string  `json:"country"`
	Description         *string  `json:"description"`
	URL                 *string  `json:"url"`
	Image               *string  `json:"image"`
	TwitterHandle       *string  `json:"twitter_handle"`
	RedditURL           *string  `json:"reddit_url"`
	TelegramURL         *string  `json:"telegram_url"`
	HasTradingIncentive *bool    `json:"has_trading_incentive"`
	TradeVolume24hBTC   *float64 `json:"trade_volume_24h_btc"`
}

// toDomain - /exchanges/{id} не возвращает id, поэтому он необязателен
func (r exchangeDetailResponse) toDomain() (domain.ExchangeDetail, error) {
	name, err := md.Required("name", r.Name)
	if err != nil {
		return domain.ExchangeDetail{}, err
	}
	d := domain.ExchangeDetail{
		Name:                name,
		YearEstablished:     r.YearEstablished,
		Country:             r.Country,
		Description:         r.Description,
		URL:                 r.URL,
		Image:               r.Image,
		TwitterHandle:       r.TwitterHandle,
		RedditURL:           r.RedditURL,
		TelegramURL:         r.TelegramURL,
		HasTradingIncentive: r.HasTradingIncentive,
		TradeVolume24hBTC:   r.TradeVolume24hBTC,
	}
	if r.ID != nil {
		d.ID = *r.ID
	}
	return d, nil
}

type globalResponse struct {
	Data *struct {
		ActiveCryptocurrencies *int               `json:"active_cryptocurrencies"`
		TotalMarketCap         map[string]float64 `json:"total_market_cap"`
		TotalVolume            map[string]float64 `json:"total_volume"`
		MarketCapPercentage    map[string]float64 `json:"market_cap_percentage"`
	} `json:"data"`
}

func (r globalResponse) toDomain(currency string) (domain.GlobalStats, error) {
	if r.Data == nil {
		return domain.GlobalStats{}, fmt.Errorf("%w: missing field %q", md.ErrDecode, "data")
	}
	n, err := md.Required("data.active_cryptocurrencies", r.Data.ActiveCryptocurrencies)
	if err != nil {
		return domain.GlobalStats{}, err
	}
	mc, ok := r.Data.TotalMarketCap[currency]
	if !ok {
		return domain.GlobalStats{}, fmt.Errorf("%w: missing total_market_cap.%s", md.ErrDecode, currency)
	}
	vol, ok := r.Data.TotalVolume[currency]
	if !ok {
		return domain.GlobalStats{}, fmt.Errorf("%w: missing total_volume.%s", md.ErrDecode, currency)
	}
	return domain.GlobalStats{
		MarketCap:              mc,
		Volume24h:              vol,
		BitcoinDominancePct:    r.Data.MarketCapPercentage["btc"],
		CryptocurrenciesNumber: n,
	}, nil
}
