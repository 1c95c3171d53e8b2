package domain

import "time"

// PriceTable - coinID -> последняя известная цена в валюте отображения.
// Пересобирается целиком при каждом получении курсов.
type PriceTable map[string]float64

// Valuation - снимок оценки портфеля
type Valuation struct {
	Prices    PriceTable
	Total     float64
	Holdings  []HoldingValue
	Currency  string
	UpdatedAt time.Time
}

// Unpriced - сколько позиций осталось без цены
func (v Valuation) Unpriced() int {
	n := 0
	for _, h := range v.Holdings {
		if !h.Priced() {
			n++
		}
	}
	return n
}

// TrendPoint - точка графика стоимости портфеля (синтетическая)
type TrendPoint struct {
	Date       time.Time `json:"date"`
	TotalValue float64   `json:"total_value"`
}
