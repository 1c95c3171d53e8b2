package valuation

import (
	"math"
	"testing"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

func holding(coinID string, amount float64) domain.Holding {
	return domain.Holding{CoinID: coinID, CoinName: coinID, CoinSymbol: coinID, Amount: amount}
}

func TestReconcile_SingleHolding(t *testing.T) {
	v := Reconcile(
		[]domain.Holding{holding("btc", 0.5)},
		[]domain.Ticker{{ID: "btc", Price: price(50000)}},
	)

	assert.Equal(t, domain.PriceTable{"btc": 50000}, v.Prices)
	assert.InDelta(t, 25000.0, v.Total, 1e-9)
	require.Len(t, v.Holdings, 1)
	require.NotNil(t, v.Holdings[0].Value)
	assert.InDelta(t, 25000.0, *v.Holdings[0].Value, 1e-9)
	assert.Equal(t, 0, v.Unpriced())
}

func TestReconcile_OnlyHeldCoinsInTable(t *testing.T) {
	v := Reconcile(
		[]domain.Holding{holding("eth", 2), holding("btc", 1)},
		[]domain.Ticker{
			{ID: "btc", Price: price(100)},
			{ID: "eth", Price: price(10)},
			{ID: "doge", Price: price(0.1)},
		},
	)

	assert.Equal(t, domain.PriceTable{"btc": 100, "eth": 10}, v.Prices)
	assert.InDelta(t, 120.0, v.Total, 1e-9)
	// порядок позиций сохраняется
	assert.Equal(t, "eth", v.Holdings[0].CoinID)
	assert.Equal(t, "btc", v.Holdings[1].CoinID)
}

func TestReconcile_EmptyTickers(t *testing.T) {
	v := Reconcile([]domain.Holding{holding("btc", 1), holding("eth", 3)}, nil)

	assert.Empty(t, v.Prices)
	assert.Zero(t, v.Total)
	assert.Equal(t, 2, v.Unpriced())
	for _, h := range v.Holdings {
		assert.Nil(t, h.Price)
		assert.Nil(t, h.Value)
	}
}

func TestReconcile_EmptyHoldings(t *testing.T) {
	v := Reconcile(nil, []domain.Ticker{{ID: "btc", Price: price(1)}})

	assert.Empty(t, v.Prices)
	assert.Empty(t, v.Holdings)
	assert.Zero(t, v.Total)
}

func TestReconcile_DuplicateTickerLastWins(t *testing.T) {
	v := Reconcile(
		[]domain.Holding{holding("btc", 1)},
		[]domain.Ticker{
			{ID: "btc", Price: price(1)},
			{ID: "btc", Price: price(2)},
		},
	)

	assert.Equal(t, 2.0, v.Prices["btc"])
	assert.Equal(t, 2.0, v.Total)
}

// Последний тикер без цены отменяет цену из предыдущего
func TestReconcile_DuplicateTickerLastWithoutPrice(t *testing.T) {
	v := Reconcile(
		[]domain.Holding{holding("btc", 1)},
		[]domain.Ticker{
			{ID: "btc", Price: price(1)},
			{ID: "btc", Price: nil},
		},
	)

	assert.Empty(t, v.Prices)
	assert.Zero(t, v.Total)
	require.Len(t, v.Holdings, 1)
	assert.False(t, v.Holdings[0].Priced())
}

func TestReconcile_TickerWithoutPriceIsUnpriced(t *testing.T) {
	v := Reconcile(
		[]domain.Holding{holding("btc", 1), holding("eth", 1)},
		[]domain.Ticker{
			{ID: "btc", Price: nil},
			{ID: "eth", Price: price(0)},
		},
	)

	_, ok := v.Prices["btc"]
	assert.False(t, ok)
	assert.False(t, v.Holdings[0].Priced())

	// нулевая цена - это известная цена, а не её отсутствие
	p, ok := v.Prices["eth"]
	assert.True(t, ok)
	assert.Zero(t, p)
	assert.True(t, v.Holdings[1].Priced())
	assert.Equal(t, 1, v.Unpriced())
}

func TestReconcile_NegativeAndNaNPassThrough(t *testing.T) {
	v := Reconcile(
		[]domain.Holding{holding("neg", 2)},
		[]domain.Ticker{{ID: "neg", Price: price(-3)}},
	)
	assert.Equal(t, -6.0, v.Total)

	v = Reconcile(
		[]domain.Holding{holding("nan", 1)},
		[]domain.Ticker{{ID: "nan", Price: price(math.NaN())}},
	)
	assert.True(t, math.IsNaN(v.Prices["nan"]))
	assert.True(t, math.IsNaN(v.Total))
}

func TestReconcile_Pure(t *testing.T) {
	items := []domain.Holding{holding("btc", 0.5), holding("eth", 1)}
	tickers := []domain.Ticker{{ID: "btc", Price: price(50000)}, {ID: "eth", Price: price(3000)}}

	first := Reconcile(items, tickers)
	second := Reconcile(items, tickers)

	assert.Equal(t, first, second)
	assert.Equal(t, 0.5, items[0].Amount)
	assert.Equal(t, 50000.0, *tickers[0].Price)
}
