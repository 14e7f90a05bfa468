package models

import (
	"testing"

	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"github.com/openmatch/matchex/types"
)

func TestOrderValidators(t *testing.T) {
	order := Order{Side: types.SideSell}

	if order.PriceValidator(decimal.Zero) || order.PriceValidator(decimal.NewFromInt(-1)) {
		t.Error("non-positive price must not validate")
	}
	if !order.PriceValidator(decimal.NewFromInt(10)) {
		t.Error("positive price must validate")
	}

	if order.QuantityValidator(decimal.Zero) {
		t.Error("zero quantity must not validate")
	}
	if !order.QuantityValidator(decimal.NewFromInt(3)) {
		t.Error("positive quantity must validate")
	}

	if !order.SideValidator(types.SideBuy) || !order.SideValidator(types.SideSell) {
		t.Error("buy and sell are valid sides")
	}
	if order.SideValidator("hold") {
		t.Error("unknown side must not validate")
	}
}

func TestOrderValidationMessages(t *testing.T) {
	order := Order{
		Side:     types.SideSell,
		Price:    decimal.Zero,
		Quantity: decimal.NewFromInt(1),
	}

	v := validate.Struct(order)
	if v.Validate() {
		t.Fatal("expected validation to fail for a zero price")
	}

	found := false
	for _, errs := range v.Errors.All() {
		for _, msg := range errs {
			if msg == "market.order.non_positive_price" {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("expected market.order.non_positive_price, got %v", v.Errors.All())
	}
}

func TestTradeValidators(t *testing.T) {
	trade := Trade{}

	if trade.ValidatePrice(decimal.Zero) {
		t.Error("non-positive trade price must not validate")
	}
	if !trade.ValidatePrice(decimal.NewFromInt(1)) {
		t.Error("positive trade price must validate")
	}
	if trade.ValidateQuantity(decimal.NewFromInt(-2)) {
		t.Error("negative trade quantity must not validate")
	}
}
