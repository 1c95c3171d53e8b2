package valuation

import "github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"

// Reconcile - сопоставляет позиции со свежими тикерами.
//
// В таблицу цен попадают только монеты из портфеля. Позиция без тикера (или с тикером
// без цены) остаётся без цены и даёт 0 в сумму. При повторе id в тикерах
// побеждает последний, даже если цены в нём нет. Отрицательные и NaN цены
// передаются как есть.
// Функция чистая: входные срезы не изменяются.
func Reconcile(holdings []domain.Holding, tickers []domain.Ticker) domain.Valuation {
	lookup := make(map[string]float64, len(tickers))
	for _, t := range tickers {
		if t.Price == nil {
			delete(lookup, t.ID)
			continue
		}
		lookup[t.ID] = *t.Price
	}

	v := domain.Valuation{
		Prices:   make(domain.PriceTable, len(holdings)),
		Holdings: make([]domain.HoldingValue, 0, len(holdings)),
	}
	for _, h := range holdings {
		hv := domain.HoldingValue{Holding: h}
		if price, ok := lookup[h.CoinID]; ok {
			value := price * h.Amount
			hv.Price = &price
			hv.Value = &value
			v.Prices[h.CoinID] = price
			v.Total += value
		}
		v.Holdings = append(v.Holdings, hv)
	}
	return v
}
