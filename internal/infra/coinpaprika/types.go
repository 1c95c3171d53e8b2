package coinpaprika

import (
	"fmt"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	md "github.com/NastyaGoryachaya/crypto-portfolio-service/internal/infra/marketdata"
)

type quoteResponse struct {
	Price            *float64 `json:"price"`
	Volume24h        *float64 `json:"volume_24h"`
	MarketCap        *float64 `json:"market_cap"`
	PercentChange24h *float64 `json:"percent_change_24h"`
}

type tickerResponse struct {
	ID     *string                  `json:"id"`
	Name   *string                  `json:"name"`
	Symbol *string                  `json:"symbol"`
	Rank   *int                     `json:"rank"`
	Quotes map[string]quoteResponse `json:"quotes"`
}

// toDomain - котировка в нужной валюте может отсутствовать (монета без цены),
// но если она есть, все её поля обязательны.
func (r tickerResponse) toDomain(currency string) (domain.Ticker, error) {
	var t domain.Ticker
	var err error
	if t.ID, err = md.Required("id", r.ID); err != nil {
		return domain.Ticker{}, err
	}
	if t.Name, err = md.Required("name", r.Name); err != nil {
		return domain.Ticker{}, err
	}
	if t.Symbol, err = md.Required("symbol", r.Symbol); err != nil {
		return domain.Ticker{}, err
	}
	if r.Quotes == nil {
		return domain.Ticker{}, fmt.Errorf("%w: missing field %q", md.ErrDecode, "quotes")
	}
	t.Rank = r.Rank

	q, ok := r.Quotes[currency]
	if !ok {
		return t, nil
	}
	for field, v := range map[string]*float64{
		"price":              q.Price,
		"volume_24h":         q.Volume24h,
		"market_cap":         q.MarketCap,
		"percent_change_24h": q.PercentChange24h,
	} {
		if _, err := md.Required("quotes."+currency+"."+field, v); err != nil {
			return domain.Ticker{}, err
		}
	}
	t.Price = q.Price
	t.Volume24h = q.Volume24h
	t.MarketCap = q.MarketCap
	t.PercentChange24h = q.PercentChange24h
	return t, nil
}

type coinDetailResponse struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Symbol      *string `json:"symbol"`
	Description *string `json:"description"`
}

func (r coinDetailResponse) toDomain() (domain.CoinDetail, error) {
	var d domain.CoinDetail
	var err error
	if d.ID, err = md.Required("id", r.ID); err != nil {
		return domain.CoinDetail{}, err
	}
	if d.Name, err = md.Required("name", r.Name); err != nil {
		return domain.CoinDetail{}, err
	}
	if d.Symbol, err = md.Required("symbol", r.Symbol); err != nil {
		return domain.CoinDetail{}, err
	}
	d.Description = r.Description
	return d, nil
}

type exchangeResponse struct {
	ID           *string  `json:"id"`
	Name         *string  `json:"name"`
	Country      *string  `json:"country"`
	WebsiteURL   *string  `json:"website_url"`
	Logo         *string  `json:"logo"`
	Volume24hUSD *float64 `json:"volume_24h_usd"`
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
	e.WebsiteURL = r.WebsiteURL
	e.Logo = r.Logo
	e.Volume24h = r.Volume24hUSD
	return e, nil
}

type globalResponse struct {
	MarketCapUSD               *float64 `json:"market_cap_usd"`
	Volume24hUSD               *float64 `json:"volume_24h_usd"`
	BitcoinDominancePercentage *float64 `json:"bitcoin_dominance_percentage"`
	CryptocurrenciesNumber     *int     `json:"cryptocurrencies_number"`
}

func (r globalResponse) toDomain() (domain.GlobalStats, error) {
	var g domain.GlobalStats
	var err error
	if g.MarketCap, err = md.Required("market_cap_usd", r.MarketCapUSD); err != nil {
		return domain.GlobalStats{}, err
	}
	if g.Volume24h, err = md.Required("volume_24h_usd", r.Volume24hUSD); err != nil {
		return domain.GlobalStats{}, err
	}
	if g.BitcoinDominancePct, err = md.Required("bitcoin_dominance_percentage", r.BitcoinDominancePercentage); err != nil {
		return domain.GlobalStats{}, err
	}
	if g.CryptocurrenciesNumber, err = md.Required("cryptocurrencies_number", r.CryptocurrenciesNumber); err != nil {
		return domain.GlobalStats{}, err
	}
	return g, nil
}
