package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"github.com/openmatch/matchex/types"
)

// Order is one resting row of the book. A row only exists while
// Price > 0 and Quantity > 0; a fill that empties an order deletes the
// row instead of zeroing it.
type Order struct {
	ID        int64           `json:"id" gorm:"primaryKey"`
	UUID      uuid.UUID       `json:"uuid" gorm:"default:gen_random_uuid()"`
	Side      types.OrderSide `json:"side" validate:"required|SideValidator"`
	Price     decimal.Decimal `json:"price" validate:"PriceValidator"`
	Quantity  decimal.Decimal `json:"quantity" validate:"QuantityValidator"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (o Order) Messages() map[string]string {
	invalid_message := "market.order.invalid_{field}"

	return validate.MS{
		"required":          invalid_message,
		"SideValidator":     invalid_message,
		"PriceValidator":    "market.order.non_positive_price",
		"QuantityValidator": "market.order.non_positive_quantity",
	}
}

func (o Order) SideValidator(Side types.OrderSide) bool {
	return Side == types.SideBuy || Side == types.SideSell
}

func (o Order) PriceValidator(Price decimal.Decimal) bool {
	return Price.IsPositive()
}

func (o Order) QuantityValidator(Quantity decimal.Decimal) bool {
	return Quantity.IsPositive()
}
