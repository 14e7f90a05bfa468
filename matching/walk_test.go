package matching

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func sell(id int64, price, qty int64) CandidateSell {
	return CandidateSell{ID: id, Price: d(price), Quantity: d(qty)}
}

func TestWalk_CrossTwoLevels(t *testing.T) {
	sells := []CandidateSell{
		sell(1, 10, 5),
		sell(2, 12, 5),
	}

	fills, remainder := Walk(d(7), sells)

	if len(fills) != 2 {
		t.Fatalf("expected 2 fills, got %d", len(fills))
	}
	if !fills[0].Price.Equal(d(10)) || !fills[0].Quantity.Equal(d(5)) {
		t.Errorf("first fill should exhaust the cheapest sell, got price=%s qty=%s", fills[0].Price, fills[0].Quantity)
	}
	if !fills[1].Price.Equal(d(12)) || !fills[1].Quantity.Equal(d(2)) {
		t.Errorf("second fill should take 2 at 12, got price=%s qty=%s", fills[1].Price, fills[1].Quantity)
	}
	if !remainder.IsZero() {
		t.Errorf("expected no remainder, got %s", remainder)
	}
}

func TestWalk_NoCandidates(t *testing.T) {
	fills, remainder := Walk(d(4), nil)

	if len(fills) != 0 {
		t.Fatalf("expected no fills, got %d", len(fills))
	}
	if !remainder.Equal(d(4)) {
		t.Errorf("expected full remainder 4, got %s", remainder)
	}
}

func TestWalk_Conservation(t *testing.T) {
	sells := []CandidateSell{
		sell(1, 8, 3),
		sell(2, 9, 4),
		sell(3, 9, 6),
		sell(4, 11, 2),
	}

	for _, qty := range []int64{1, 3, 7, 13, 15, 20} {
		fills, remainder := Walk(d(qty), sells)

		matched := decimal.Zero
		for _, fill := range fills {
			matched = matched.Add(fill.Quantity)
		}

		if !matched.Add(remainder).Equal(d(qty)) {
			t.Errorf("quantity %d: matched %s + remainder %s != requested", qty, matched, remainder)
		}
	}
}

func TestWalk_PricePriority(t *testing.T) {
	sells := []CandidateSell{
		sell(1, 10, 4),
		sell(2, 12, 4),
	}

	fills, _ := Walk(d(6), sells)

	if len(fills) != 2 {
		t.Fatalf("expected 2 fills, got %d", len(fills))
	}

	// the pricier sell may only be touched after the cheaper is exhausted
	if !fills[0].Quantity.Equal(d(4)) {
		t.Errorf("cheaper sell not exhausted before the pricier one: %s", fills[0].Quantity)
	}
	if fills[0].Price.GreaterThan(fills[1].Price) {
		t.Errorf("fills out of price order: %s before %s", fills[0].Price, fills[1].Price)
	}
}

func TestWalk_FIFOTieBreak(t *testing.T) {
	// equal price, earliest arrival first (lower id arrived first)
	sells := []CandidateSell{
		sell(7, 10, 3),
		sell(9, 10, 3),
	}

	fills, _ := Walk(d(4), sells)

	if len(fills) != 2 {
		t.Fatalf("expected 2 fills, got %d", len(fills))
	}
	if fills[0].OrderID != 7 || !fills[0].Quantity.Equal(d(3)) {
		t.Errorf("earliest sell should fill first and fully, got id=%d qty=%s", fills[0].OrderID, fills[0].Quantity)
	}
	if fills[1].OrderID != 9 || !fills[1].Quantity.Equal(d(1)) {
		t.Errorf("second sell should take the remaining 1, got id=%d qty=%s", fills[1].OrderID, fills[1].Quantity)
	}
}

func TestWalk_MakerPrice(t *testing.T) {
	sells := []CandidateSell{
		sell(1, 10, 5),
	}

	fills, _ := Walk(d(5), sells)

	if len(fills) != 1 {
		t.Fatalf("expected 1 fill, got %d", len(fills))
	}
	if !fills[0].Price.Equal(d(10)) {
		t.Errorf("fill must carry the resting price, got %s", fills[0].Price)
	}
}

func TestWalk_PartialRemainder(t *testing.T) {
	sells := []CandidateSell{
		sell(1, 10, 2),
	}

	fills, remainder := Walk(d(9), sells)

	if len(fills) != 1 {
		t.Fatalf("expected 1 fill, got %d", len(fills))
	}
	if !remainder.Equal(d(7)) {
		t.Errorf("expected remainder 7, got %s", remainder)
	}
}
