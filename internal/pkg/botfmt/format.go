package botfmt

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// NotAvailable - подпись для значения, которого нет
const NotAvailable = "N/A"

// Money - сумма в валюте с символом и разделителями ($25,000.00).
// Округление до минимальной единицы валюты, NaN и ±Inf дают N/A.
func Money(amount float64, currency string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return NotAvailable
	}
	fraction := 2
	if cur := money.GetCurrency(currency); cur != nil {
		fraction = cur.Fraction
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(fraction)).Round(0).IntPart()
	return money.New(minor, currency).Display()
}

// MoneyOrNA - как Money, но nil тоже N/A
func MoneyOrNA(amount *float64, currency string) string {
	if amount == nil {
		return NotAvailable
	}
	return Money(*amount, currency)
}

// FormatBenchmark - цена эталонной монеты из кэша виджета
func FormatBenchmark(price float64, ok bool, loadedAt time.Time, currency string) string {
	if !ok {
		return "Цена BTC пока неизвестна"
	}
	return fmt.Sprintf("BTC: %s\nОбновлено: %s", Money(price, currency), loadedAt.Format("15:04:05"))
}

// FormatPortfolio - по строке на позицию и итог. Позиции без цены помечены N/A.
func FormatPortfolio(v domain.Valuation) string {
	if len(v.Holdings) == 0 {
		return "Портфель пуст"
	}
	var b strings.Builder
	for i, h := range v.Holdings {
		symbol := h.CoinSymbol
		if symbol == "" {
			symbol = h.CoinID
		}
		fmt.Fprintf(&b, "%d. %s | %s шт. | Цена: %s | Стоимость: %s\n",
			i+1,
			strings.ToUpper(symbol),
			decimal.NewFromFloat(h.Amount).String(),
			MoneyOrNA(h.Price, v.Currency),
			MoneyOrNA(h.Value, v.Currency),
		)
	}
	fmt.Fprintf(&b, "Итого: %s", Money(v.Total, v.Currency))
	if n := v.Unpriced(); n > 0 {
		fmt.Fprintf(&b, " (без цены: %d)", n)
	}
	if !v.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "\nОбновлено: %s", v.UpdatedAt.Format("15:04:05"))
	}
	return b.String()
}

// FormatTrend - синтетический ряд по дням
func FormatTrend(points []domain.TrendPoint, currency string) string {
	var b strings.Builder
	b.WriteString("Динамика портфеля (синтетическая, не история цен):\n")
	for _, p := range points {
		fmt.Fprintf(&b, "%s: %s\n", p.Date.Format("02.01"), Money(p.TotalValue, currency))
	}
	return strings.TrimRight(b.String(), "\n")
}
