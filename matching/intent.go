package matching

import (
	"github.com/shopspring/decimal"

	"github.com/openmatch/matchex/types"
)

// OrderIntent is the tagged form of a submission. The façade decides the
// side from the raw request fields; everything past the controller layer
// only ever sees this shape.
type OrderIntent struct {
	Side     types.OrderSide `json:"side"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

func BuyIntent(price, quantity decimal.Decimal) OrderIntent {
	return OrderIntent{Side: types.SideBuy, Price: price, Quantity: quantity}
}

func SellIntent(price, quantity decimal.Decimal) OrderIntent {
	return OrderIntent{Side: types.SideSell, Price: price, Quantity: quantity}
}
