package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openmatch/matchex/types"
)

type OrderEntity struct {
	ID        int64           `json:"id"`
	UUID      uuid.UUID       `json:"uuid"`
	Market    string          `json:"market"`
	Side      types.OrderSide `json:"side"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
