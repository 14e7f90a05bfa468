package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openmatch/matchex/config"
)

// Trade is one executed fill. Rows are append-only: no update or delete
// path exists anywhere in the codebase.
type Trade struct {
	ID        uint64          `json:"id" gorm:"primaryKey"`
	Price     decimal.Decimal `json:"price" validate:"ValidatePrice"`
	Quantity  decimal.Decimal `json:"quantity" validate:"ValidateQuantity"`
	CreatedAt time.Time       `json:"created_at"`
}

func (t Trade) ValidatePrice(Price decimal.Decimal) bool {
	return Price.IsPositive()
}

func (t Trade) ValidateQuantity(Quantity decimal.Decimal) bool {
	return Quantity.IsPositive()
}

func (t *Trade) WriteToInflux() {
	price, _ := t.Price.Float64()
	quantity, _ := t.Quantity.Float64()

	tags := map[string]string{"market": config.App.Market}
	fields := map[string]interface{}{
		"id":       int64(t.ID),
		"price":    price,
		"quantity": quantity,
	}

	config.InfluxDB.NewPoint("trades", tags, fields)
}
