package types

import "github.com/shopspring/decimal"

type OrderSide = string

var (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

// Depth is the aggregated view of the resting book: one [price, quantity]
// entry per price level, asks ascending and bids descending.
type Depth struct {
	Asks     [][]decimal.Decimal `json:"asks"`
	Bids     [][]decimal.Decimal `json:"bids"`
	Sequence uint64              `json:"sequence"`
}
