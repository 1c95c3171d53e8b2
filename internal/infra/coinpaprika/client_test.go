package coinpaprika_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/consts"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/infra/coinpaprika"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/infra/marketdata"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/sharedstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tickersBody = `[
  {"id":"btc-bitcoin","name":"Bitcoin","symbol":"BTC","rank":1,
   "quotes":{"CAD":{"price":65000.5,"volume_24h":1,"market_cap":2,"percent_change_24h":-1.5}}},
  {"id":"new-coin","name":"New","symbol":"NEW","rank":9000,"quotes":{}}
]`

func newTestClient(t *testing.T, h http.HandlerFunc, cache marketdata.PriceCache) *coinpaprika.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	httpClient := marketdata.NewClient(marketdata.Config{Timeout: 2 * time.Second}, slog.Default())
	var bench *marketdata.Benchmark
	if cache != nil {
		bench = marketdata.NewBenchmark(cache, "btc-bitcoin", slog.Default())
	}
	return coinpaprika.NewClient(coinpaprika.Config{BaseURL: srv.URL, Currency: "cad"}, httpClient, bench, slog.Default())
}

func TestFetchTickers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tickers", r.URL.Path)
		assert.Equal(t, "CAD", r.URL.Query().Get("quotes"))
		_, _ = w.Write([]byte(tickersBody))
	}, nil)

	tickers, err := c.FetchTickers(context.Background())
	require.NoError(t, err)
	require.Len(t, tickers, 2)

	btc := tickers[0]
	assert.Equal(t, "btc-bitcoin", btc.ID)
	assert.Equal(t, "BTC", btc.Symbol)
	require.NotNil(t, btc.Rank)
	assert.Equal(t, 1, *btc.Rank)
	require.NotNil(t, btc.Price)
	assert.Equal(t, 65000.5, *btc.Price)
	assert.Equal(t, -1.5, *btc.PercentChange24h)

	// котировки в нужной валюте нет: цена неизвестна, а не ноль
	assert.Nil(t, tickers[1].Price)
}

func TestFetchTickers_IncompleteQuoteIsDecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"btc-bitcoin","name":"Bitcoin","symbol":"BTC","quotes":{"CAD":{"price":1}}}]`))
	}, nil)

	_, err := c.FetchTickers(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, marketdata.ErrDecode)
}

func TestFetchTickers_MissingRequiredField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"Bitcoin","symbol":"BTC","quotes":{}}]`))
	}, nil)

	_, err := c.FetchTickers(context.Background())
	assert.ErrorIs(t, err, marketdata.ErrDecode)
}

// null вместо списка - ошибка формата, а не пустой рынок
func TestFetchLists_NullBodyIsDecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}, nil)

	tickers, err := c.FetchTickers(context.Background())
	assert.ErrorIs(t, err, marketdata.ErrDecode)
	assert.Nil(t, tickers)

	exchanges, err := c.FetchExchanges(context.Background())
	assert.ErrorIs(t, err, marketdata.ErrDecode)
	assert.Nil(t, exchanges)
}

func TestFetchTickers_UpstreamErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, nil)
	_, err := c.FetchTickers(context.Background())
	assert.ErrorIs(t, err, marketdata.ErrNetwork)

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, nil)
	_, err = c.FetchTickers(context.Background())
	assert.ErrorIs(t, err, marketdata.ErrEmptyResponse)
}

func TestFetchTickers_WritesBenchmark(t *testing.T) {
	shared := sharedstate.NewMemory(consts.DefaultSuite)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(tickersBody))
	}, shared)

	_, err := c.FetchTickers(context.Background())
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		v, ok, err := shared.Float(context.Background(), consts.BenchmarkPriceKey)
		return err == nil && ok && v == 65000.5
	}, time.Second, 10*time.Millisecond)
}

func TestFetchCoinDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/coins/btc-bitcoin", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"btc-bitcoin","name":"Bitcoin","symbol":"BTC","description":"Digital gold"}`))
	}, nil)

	d, err := c.FetchCoinDetail(context.Background(), "btc-bitcoin")
	require.NoError(t, err)
	assert.Equal(t, "Bitcoin", d.Name)
	require.NotNil(t, d.Description)
	assert.Equal(t, "Digital gold", *d.Description)
}

func TestFetchExchanges(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/exchanges", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"binance","name":"Binance","volume_24h_usd":1000},{"id":"tiny","name":"Tiny"}]`))
	}, nil)

	ex, err := c.FetchExchanges(context.Background())
	require.NoError(t, err)
	require.Len(t, ex, 2)
	require.NotNil(t, ex[0].Volume24h)
	assert.Equal(t, 1000.0, *ex[0].Volume24h)
	assert.Nil(t, ex[1].Volume24h)
	assert.Nil(t, ex[1].Country)
}

func TestFetchExchangeDetail_Unsupported(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	}, nil)

	_, err := c.FetchExchangeDetail(context.Background(), "binance")
	assert.ErrorIs(t, err, marketdata.ErrUnsupported)
}

func TestFetchGlobalStats(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/global", r.URL.Path)
		_, _ = w.Write([]byte(`{"market_cap_usd":2.5e12,"volume_24h_usd":9e10,"bitcoin_dominance_percentage":54.2,"cryptocurrencies_number":9500}`))
	}, nil)

	g, err := c.FetchGlobalStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2.5e12, g.MarketCap)
	assert.Equal(t, 54.2, g.BitcoinDominancePct)
	assert.Equal(t, 9500, g.CryptocurrenciesNumber)

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"market_cap_usd":1}`))
	}, nil)
	_, err = c.FetchGlobalStats(context.Background())
	assert.ErrorIs(t, err, marketdata.ErrDecode)
}
