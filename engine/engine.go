package engine

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/openmatch/matchex/config"
	"github.com/openmatch/matchex/matching"
	"github.com/openmatch/matchex/models"
	"github.com/openmatch/matchex/types"
)

// Result is the outcome of one settled submission.
type Result struct {
	Message           string          `json:"message"`
	MatchedQuantity   decimal.Decimal `json:"matched_quantity"`
	RemainingQuantity decimal.Decimal `json:"remaining_quantity"`
	Trades            []models.Trade  `json:"trades"`
}

// Engine serializes submissions against the book and applies each one as
// a single atomic unit of work on the injected store. Two submissions can
// never race on the same resting order: the mutex makes the engine a
// single writer, and the store transaction holds row locks until commit.
type Engine struct {
	MatchingMutex sync.Mutex
	Market        string

	store Store
	depth *matching.Depth
}

func NewEngine(market string, store Store) *Engine {
	return &Engine{
		Market: market,
		store:  store,
		depth:  matching.NewDepth(market),
	}
}

// ReloadDepth rebuilds the aggregated depth view from the persisted book,
// called once at boot before the engine accepts submissions.
func (e *Engine) ReloadDepth() error {
	e.MatchingMutex.Lock()
	defer e.MatchingMutex.Unlock()

	orders, err := e.store.ListResting("")
	if err != nil {
		return err
	}

	levels := make(map[string]*matching.PriceLevel)
	ordered := make([]*matching.PriceLevel, 0)

	for _, o := range orders {
		key := o.Side + ":" + o.Price.String()
		pl, found := levels[key]
		if !found {
			pl = matching.NewPriceLevel(o.Side, o.Price)
			levels[key] = pl
			ordered = append(ordered, pl)
		}
		pl.Total = pl.Total.Add(o.Quantity)
	}

	e.depth.Reset(ordered)

	return nil
}

func validateIntent(intent matching.OrderIntent) error {
	if intent.Side != types.SideBuy && intent.Side != types.SideSell {
		return &ValidationError{Field: "side", Reason: "invalid"}
	}
	if !intent.Price.IsPositive() {
		return &ValidationError{Field: "price", Reason: "non_positive"}
	}
	if !intent.Quantity.IsPositive() {
		return &ValidationError{Field: "quantity", Reason: "non_positive"}
	}

	return nil
}

// Submit settles one order intent. The buy path walks the matchable
// sells cheapest-first; the sell path rests the order unconditionally.
// Incoming sells are never matched against resting buy remainders, even
// when prices cross; that asymmetry is deliberate and covered by tests.
func (e *Engine) Submit(intent matching.OrderIntent) (*Result, error) {
	if err := validateIntent(intent); err != nil {
		return nil, err
	}

	e.MatchingMutex.Lock()
	defer e.MatchingMutex.Unlock()

	if intent.Side == types.SideBuy {
		return e.submitBuy(intent)
	}

	return e.submitSell(intent)
}

func (e *Engine) submitBuy(intent matching.OrderIntent) (*Result, error) {
	var fills []matching.Fill
	var trades []models.Trade
	remaining := intent.Quantity

	err := e.store.Atomically(func(tx Store) error {
		fills = nil
		trades = nil
		remaining = intent.Quantity

		sells, err := tx.MatchableSells(intent.Price)
		if err != nil {
			return err
		}

		fills, remaining = matching.Walk(intent.Quantity, sells)

		for _, fill := range fills {
			trade, err := tx.Record(fill.Price, fill.Quantity)
			if err != nil {
				return err
			}

			if err := tx.DecrementOrDelete(fill.OrderID, fill.Quantity); err != nil {
				return err
			}

			trades = append(trades, *trade)
		}

		if remaining.IsPositive() {
			if _, err := tx.InsertResting(types.SideBuy, intent.Price, remaining); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	for _, fill := range fills {
		e.depth.Decrement(types.SideSell, fill.Price, fill.Quantity)
	}
	if remaining.IsPositive() {
		e.depth.Add(types.SideBuy, intent.Price, remaining)
	}

	if config.InfluxDB != nil {
		for i := range trades {
			trades[i].WriteToInflux()
		}
	}

	matched := intent.Quantity.Sub(remaining)
	config.Logger.Infof("matched buy order: price=%s quantity=%s matched=%s remaining=%s fills=%d",
		intent.Price, intent.Quantity, matched, remaining, len(fills))

	return &Result{
		Message:           "Order processed successfully",
		MatchedQuantity:   matched,
		RemainingQuantity: remaining,
		Trades:            trades,
	}, nil
}

func (e *Engine) submitSell(intent matching.OrderIntent) (*Result, error) {
	err := e.store.Atomically(func(tx Store) error {
		_, err := tx.InsertResting(types.SideSell, intent.Price, intent.Quantity)
		return err
	})

	if err != nil {
		return nil, err
	}

	e.depth.Add(types.SideSell, intent.Price, intent.Quantity)

	config.Logger.Infof("rested sell order: price=%s quantity=%s", intent.Price, intent.Quantity)

	return &Result{
		Message:           "Seller order added successfully",
		MatchedQuantity:   decimal.Zero,
		RemainingQuantity: intent.Quantity,
		Trades:            []models.Trade{},
	}, nil
}

// PendingOrders feeds the pending-orders listing endpoint.
func (e *Engine) PendingOrders(side types.OrderSide) ([]models.Order, error) {
	return e.store.ListResting(side)
}

// CompletedOrders feeds the completed-orders listing endpoint.
func (e *Engine) CompletedOrders() ([]models.Trade, error) {
	return e.store.ListAll()
}

func (e *Engine) DepthSnapshot() types.Depth {
	return e.depth.Snapshot()
}
