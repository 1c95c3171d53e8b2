package domain

import (
	"time"

	"github.com/google/uuid"
)

// Holding - запись о количестве одной монеты в портфеле пользователя
type Holding struct {
	ID         uuid.UUID `json:"id"`
	CoinID     string    `json:"coin_id"`     // идентификатор монеты у провайдера (btc-bitcoin, bitcoin)
	CoinName   string    `json:"coin_name"`   // Bitcoin
	CoinSymbol string    `json:"coin_symbol"` // BTC
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// HoldingValue - позиция портфеля вместе с оценкой.
// Price == nil означает, что цены для монеты в последнем снимке нет.
type HoldingValue struct {
	Holding
	Price *float64
	Value *float64
}

// Priced - есть ли у позиции цена
func (h HoldingValue) Priced() bool { return h.Price != nil }
