package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type TradeEntity struct {
	ID        uint64          `json:"id"`
	Market    string          `json:"market"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
}
