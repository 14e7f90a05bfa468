package matching

import (
	"testing"

	"github.com/openmatch/matchex/types"
)

func TestDepth_AddAggregates(t *testing.T) {
	depth := NewDepth("testusd")

	depth.Add(types.SideSell, d(10), d(3))
	depth.Add(types.SideSell, d(10), d(2))
	depth.Add(types.SideSell, d(12), d(1))
	depth.Add(types.SideBuy, d(9), d(4))

	snapshot := depth.Snapshot()

	if len(snapshot.Asks) != 2 {
		t.Fatalf("expected 2 ask levels, got %d", len(snapshot.Asks))
	}
	if !snapshot.Asks[0][0].Equal(d(10)) || !snapshot.Asks[0][1].Equal(d(5)) {
		t.Errorf("expected best ask [10 5], got [%s %s]", snapshot.Asks[0][0], snapshot.Asks[0][1])
	}
	if len(snapshot.Bids) != 1 {
		t.Fatalf("expected 1 bid level, got %d", len(snapshot.Bids))
	}
	if !snapshot.Bids[0][0].Equal(d(9)) {
		t.Errorf("expected bid at 9, got %s", snapshot.Bids[0][0])
	}
}

func TestDepth_AsksAscendBidsDescend(t *testing.T) {
	depth := NewDepth("testusd")

	depth.Add(types.SideSell, d(12), d(1))
	depth.Add(types.SideSell, d(10), d(1))
	depth.Add(types.SideSell, d(11), d(1))
	depth.Add(types.SideBuy, d(8), d(1))
	depth.Add(types.SideBuy, d(9), d(1))

	snapshot := depth.Snapshot()

	for i := 1; i < len(snapshot.Asks); i++ {
		if !snapshot.Asks[i-1][0].LessThan(snapshot.Asks[i][0]) {
			t.Errorf("asks not ascending at %d", i)
		}
	}
	for i := 1; i < len(snapshot.Bids); i++ {
		if !snapshot.Bids[i-1][0].GreaterThan(snapshot.Bids[i][0]) {
			t.Errorf("bids not descending at %d", i)
		}
	}
}

func TestDepth_DecrementRemovesEmptyLevel(t *testing.T) {
	depth := NewDepth("testusd")

	depth.Add(types.SideSell, d(10), d(5))
	depth.Decrement(types.SideSell, d(10), d(3))

	snapshot := depth.Snapshot()
	if len(snapshot.Asks) != 1 || !snapshot.Asks[0][1].Equal(d(2)) {
		t.Fatalf("expected ask level with 2 remaining, got %+v", snapshot.Asks)
	}

	depth.Decrement(types.SideSell, d(10), d(2))

	snapshot = depth.Snapshot()
	if len(snapshot.Asks) != 0 {
		t.Errorf("expected exhausted level to be removed, got %+v", snapshot.Asks)
	}
}

func TestDepth_SequenceAdvances(t *testing.T) {
	depth := NewDepth("testusd")

	before := depth.Snapshot().Sequence
	depth.Add(types.SideSell, d(10), d(1))
	after := depth.Snapshot().Sequence

	if after <= before {
		t.Errorf("sequence did not advance: %d -> %d", before, after)
	}
}
