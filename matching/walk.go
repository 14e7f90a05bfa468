package matching

import (
	"github.com/shopspring/decimal"
)

// CandidateSell is one matchable resting sell as read from the book,
// already filtered to price <= bid and sorted by price asc, arrival asc.
type CandidateSell struct {
	ID       int64
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// Fill is the result of matching part of an incoming buy against one
// resting sell. Price is always the resting order's price.
type Fill struct {
	OrderID  int64
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// Walk runs the matching algorithm for an incoming buy of the given
// quantity over the candidate sells, in the order given. It is pure: the
// caller applies the returned fills and remainder inside its own unit of
// work. The fill quantities always sum to quantity minus the remainder.
func Walk(quantity decimal.Decimal, sells []CandidateSell) ([]Fill, decimal.Decimal) {
	fills := make([]Fill, 0, len(sells))
	remaining := quantity

	for _, sell := range sells {
		if !remaining.IsPositive() {
			break
		}

		fill_qty := decimal.Min(remaining, sell.Quantity)
		fills = append(fills, Fill{
			OrderID:  sell.ID,
			Price:    sell.Price,
			Quantity: fill_qty,
		})

		remaining = remaining.Sub(fill_qty)
	}

	return fills, remaining
}
