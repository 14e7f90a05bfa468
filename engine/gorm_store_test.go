package engine

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/openmatch/matchex/types"
)

// Row validation happens before the insert is issued, so invalid values
// must surface as a ConsistencyViolation without touching the database.

func TestGormStore_InsertRestingRejectsInvalidRows(t *testing.T) {
	store := NewGormStore(nil)

	cases := []struct {
		side  types.OrderSide
		price decimal.Decimal
		qty   decimal.Decimal
	}{
		{types.SideSell, decimal.Zero, d(5)},
		{types.SideSell, d(-3), d(5)},
		{types.SideBuy, d(10), decimal.Zero},
		{types.SideBuy, d(10), d(-1)},
		{"hold", d(10), d(5)},
	}

	for _, c := range cases {
		_, err := store.InsertResting(c.side, c.price, c.qty)

		var violation *ConsistencyViolation
		if !errors.As(err, &violation) {
			t.Errorf("side=%s price=%s qty=%s: expected ConsistencyViolation, got %v",
				c.side, c.price, c.qty, err)
		}
	}
}

func TestGormStore_RecordRejectsNonPositiveTrades(t *testing.T) {
	store := NewGormStore(nil)

	for _, c := range []struct {
		price decimal.Decimal
		qty   decimal.Decimal
	}{
		{decimal.Zero, d(1)},
		{d(1), decimal.Zero},
		{d(1), d(-2)},
	} {
		_, err := store.Record(c.price, c.qty)

		var violation *ConsistencyViolation
		if !errors.As(err, &violation) {
			t.Errorf("price=%s qty=%s: expected ConsistencyViolation, got %v", c.price, c.qty, err)
		}
	}
}
