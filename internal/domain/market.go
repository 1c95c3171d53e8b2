package domain

// Ticker - снимок цены, объёма и капитализации одной монеты от провайдера.
// Необязательные поля провайдера остаются nil, а не 0.
type Ticker struct {
	ID               string
	Name             string
	Symbol           string
	Rank             *int
	Price            *float64
	Volume24h        *float64
	MarketCap        *float64
	PercentChange24h *float64
}

// CoinDetail - описание монеты
type CoinDetail struct {
	ID          string
	Name        string
	Symbol      string
	Description *string
}

// Exchange - элемент списка бирж
type Exchange struct {
	ID         string
	Name       string
	Country    *string
	WebsiteURL *string
	Logo       *string
	Volume24h  *float64
}

// ExchangeDetail - подробная карточка биржи (есть только у CoinGecko)
type ExchangeDetail struct {
	ID                  string
	Name                string
	YearEstablished     *int
	Country             *string
	Description         *string
	URL                 *string
	Image               *string
	TwitterHandle       *string
	RedditURL           *string
	TelegramURL         *string
	HasTradingIncentive *bool
	TradeVolume24hBTC   *float64
}

// GlobalStats - общая статистика рынка
type GlobalStats struct {
	MarketCap              float64
	Volume24h              float64
	BitcoinDominancePct    float64
	CryptocurrenciesNumber int
}
