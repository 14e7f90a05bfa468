package engine

import (
	"github.com/gookit/validate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/openmatch/matchex/matching"
	"github.com/openmatch/matchex/models"
	"github.com/openmatch/matchex/types"
)

// GormStore implements Store on PostgreSQL. Every query is parameterized
// through gorm; price and quantity values never reach the SQL text.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) MatchableSells(maxPrice decimal.Decimal) ([]matching.CandidateSell, error) {
	var orders []models.Order

	result := models.Lock(s.db).
		Where("side = ? AND price <= ?", types.SideSell, maxPrice).
		Order("price asc, id asc").
		Find(&orders)

	if result.Error != nil {
		return nil, &StorageFailure{Err: result.Error}
	}

	sells := make([]matching.CandidateSell, 0, len(orders))
	for _, o := range orders {
		if !o.Quantity.IsPositive() || !o.Price.IsPositive() {
			return nil, &ConsistencyViolation{Reason: "non_positive_resting_order"}
		}

		sells = append(sells, matching.CandidateSell{
			ID:       o.ID,
			Price:    o.Price,
			Quantity: o.Quantity,
		})
	}

	return sells, nil
}

func (s *GormStore) DecrementOrDelete(orderID int64, filled decimal.Decimal) error {
	var order models.Order

	if result := models.Lock(s.db).First(&order, "id = ?", orderID); result.Error != nil {
		return &StorageFailure{Err: result.Error}
	}

	remaining := order.Quantity.Sub(filled)

	if remaining.IsNegative() {
		return &ConsistencyViolation{Reason: "decrement_below_zero"}
	}

	if remaining.IsZero() {
		if result := s.db.Delete(&order); result.Error != nil {
			return &StorageFailure{Err: result.Error}
		}
		return nil
	}

	if result := s.db.Model(&order).Update("quantity", remaining); result.Error != nil {
		return &StorageFailure{Err: result.Error}
	}

	return nil
}

func (s *GormStore) InsertResting(side types.OrderSide, price, quantity decimal.Decimal) (*models.Order, error) {
	order := &models.Order{
		Side:     side,
		Price:    price,
		Quantity: quantity,
	}

	if v := validate.Struct(order); !v.Validate() {
		return nil, &ConsistencyViolation{Reason: "non_positive_resting_order"}
	}

	if result := s.db.Create(order); result.Error != nil {
		return nil, &StorageFailure{Err: result.Error}
	}

	return order, nil
}

func (s *GormStore) ListResting(side types.OrderSide) ([]models.Order, error) {
	var orders []models.Order

	tx := s.db.Order("price asc, id asc")
	if len(side) > 0 {
		tx = tx.Where("side = ?", side)
	}

	if result := tx.Find(&orders); result.Error != nil {
		return nil, &StorageFailure{Err: result.Error}
	}

	return orders, nil
}

func (s *GormStore) Record(price, quantity decimal.Decimal) (*models.Trade, error) {
	trade := &models.Trade{
		Price:    price,
		Quantity: quantity,
	}

	if v := validate.Struct(trade); !v.Validate() {
		return nil, &ConsistencyViolation{Reason: "non_positive_trade"}
	}

	if result := s.db.Create(trade); result.Error != nil {
		return nil, &StorageFailure{Err: result.Error}
	}

	return trade, nil
}

func (s *GormStore) ListAll() ([]models.Trade, error) {
	var trades []models.Trade

	if result := s.db.Order("id asc").Find(&trades); result.Error != nil {
		return nil, &StorageFailure{Err: result.Error}
	}

	return trades, nil
}

func (s *GormStore) Atomically(fn func(tx Store) error) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})

	if err == nil {
		return nil
	}

	switch err.(type) {
	case *ValidationError, *ConsistencyViolation, *StorageFailure:
		return err
	}

	return &StorageFailure{Err: err}
}
