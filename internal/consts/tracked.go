package consts

import "strings"

// BenchmarkPriceKey - ключ общей цены эталонной монеты в shared state
const BenchmarkPriceKey = "btcPrice"

// DefaultSuite - пространство имён shared state по умолчанию
const DefaultSuite = "group.crypto-portfolio"

const (
	ProviderCoinPaprika = "coinpaprika"
	ProviderCoinGecko   = "coingecko"
)

// benchmarkCoins - идентификатор BTC у каждого провайдера
var benchmarkCoins = map[string]string{
	ProviderCoinPaprika: "btc-bitcoin",
	ProviderCoinGecko:   "bitcoin",
}

// BenchmarkCoin - идентификатор эталонной монеты для провайдера, "" если провайдер неизвестен
func BenchmarkCoin(provider string) string {
	return benchmarkCoins[strings.ToLower(strings.TrimSpace(provider))]
}

// IsKnownProvider - поддерживается ли провайдер
func IsKnownProvider(provider string) bool {
	return BenchmarkCoin(provider) != ""
}
