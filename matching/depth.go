package matching

import (
	"sync"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/shopspring/decimal"

	"github.com/openmatch/matchex/types"
)

// Depth is the in-memory aggregated view of the resting book, maintained
// by the engine after every committed submission. Asks iterate ascending
// by price, bids descending, so the best level is always first.
type Depth struct {
	depthMutex sync.RWMutex

	Symbol   string
	Asks     *redblacktree.Tree
	Bids     *redblacktree.Tree
	Sequence uint64
}

func askComparator(a, b interface{}) int {
	return a.(decimal.Decimal).Cmp(b.(decimal.Decimal))
}

func bidComparator(a, b interface{}) int {
	return b.(decimal.Decimal).Cmp(a.(decimal.Decimal))
}

func NewDepth(symbol string) *Depth {
	return &Depth{
		Symbol: symbol,
		Asks:   redblacktree.NewWith(askComparator),
		Bids:   redblacktree.NewWith(bidComparator),
	}
}

func (d *Depth) tree(side types.OrderSide) *redblacktree.Tree {
	if side == types.SideSell {
		return d.Asks
	}

	return d.Bids
}

// Add increases the aggregate at the order's price level, creating the
// level when it does not exist yet.
func (d *Depth) Add(side types.OrderSide, price, quantity decimal.Decimal) {
	d.depthMutex.Lock()
	defer d.depthMutex.Unlock()

	price_levels := d.tree(side)

	value, found := price_levels.Get(price)
	if !found {
		pl := NewPriceLevel(side, price)
		pl.Total = quantity
		price_levels.Put(price, pl)
		d.Sequence++
		return
	}

	price_level := value.(*PriceLevel)
	price_level.Total = price_level.Total.Add(quantity)
	d.Sequence++
}

// Decrement reduces the aggregate at a price level, removing the level
// once it is exhausted.
func (d *Depth) Decrement(side types.OrderSide, price, quantity decimal.Decimal) {
	d.depthMutex.Lock()
	defer d.depthMutex.Unlock()

	price_levels := d.tree(side)

	value, found := price_levels.Get(price)
	if !found {
		return
	}

	price_level := value.(*PriceLevel)
	price_level.Total = price_level.Total.Sub(quantity)

	if price_level.Empty() {
		price_levels.Remove(price)
	}

	d.Sequence++
}

// Reset rebuilds the whole view, used at boot from the persisted book.
func (d *Depth) Reset(levels []*PriceLevel) {
	d.depthMutex.Lock()
	defer d.depthMutex.Unlock()

	d.Asks.Clear()
	d.Bids.Clear()

	for _, pl := range levels {
		d.tree(pl.Side).Put(pl.Price, pl)
	}

	d.Sequence++
}

func (d *Depth) Snapshot() types.Depth {
	d.depthMutex.RLock()
	defer d.depthMutex.RUnlock()

	snapshot := types.Depth{
		Asks:     make([][]decimal.Decimal, 0, d.Asks.Size()),
		Bids:     make([][]decimal.Decimal, 0, d.Bids.Size()),
		Sequence: d.Sequence,
	}

	it := d.Asks.Iterator()
	for it.Next() {
		pl := it.Value().(*PriceLevel)
		snapshot.Asks = append(snapshot.Asks, []decimal.Decimal{pl.Price, pl.Total})
	}

	it = d.Bids.Iterator()
	for it.Next() {
		pl := it.Value().(*PriceLevel)
		snapshot.Bids = append(snapshot.Bids, []decimal.Decimal{pl.Price, pl.Total})
	}

	return snapshot
}
