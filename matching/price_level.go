package matching

import (
	"github.com/shopspring/decimal"

	"github.com/openmatch/matchex/types"
)

// PriceLevel aggregates the resting quantity at one price. The individual
// rows live in the book store; the depth view only needs the totals.
type PriceLevel struct {
	Side  types.OrderSide
	Price decimal.Decimal
	Total decimal.Decimal
}

func NewPriceLevel(side types.OrderSide, price decimal.Decimal) *PriceLevel {
	return &PriceLevel{
		Side:  side,
		Price: price,
		Total: decimal.Zero,
	}
}

func (p *PriceLevel) Empty() bool {
	return !p.Total.IsPositive()
}
