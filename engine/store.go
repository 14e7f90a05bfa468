package engine

import (
	"github.com/shopspring/decimal"

	"github.com/openmatch/matchex/matching"
	"github.com/openmatch/matchex/models"
	"github.com/openmatch/matchex/types"
)

// Book is the resting-order side of the store.
type Book interface {
	// MatchableSells returns resting sells with price <= maxPrice,
	// ordered by price asc then arrival asc.
	MatchableSells(maxPrice decimal.Decimal) ([]matching.CandidateSell, error)

	// DecrementOrDelete reduces a resting order by the filled quantity and
	// deletes the row when it reaches zero. Going negative is a
	// ConsistencyViolation, never a clamp.
	DecrementOrDelete(orderID int64, filled decimal.Decimal) error

	InsertResting(side types.OrderSide, price, quantity decimal.Decimal) (*models.Order, error)

	ListResting(side types.OrderSide) ([]models.Order, error)
}

// Ledger is the append-only trade side of the store.
type Ledger interface {
	Record(price, quantity decimal.Decimal) (*models.Trade, error)

	ListAll() ([]models.Trade, error)
}

// Store is the persistence collaborator injected into the engine.
// Atomically runs fn against a transactional view of the same store:
// either every mutation fn performed becomes visible together, or none.
type Store interface {
	Book
	Ledger

	Atomically(fn func(tx Store) error) error
}
