package helpers

import (
	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"github.com/openmatch/matchex/matching"
)

// CreateOrderParams keeps the historical wire shape: a submission carries
// both buyer and seller fields and exactly one pair decides the side.
// Fields on the side that does not fire are ignored entirely, so a
// negative leftover value there must not reject the submission.
type CreateOrderParams struct {
	BuyerQty    decimal.Decimal `json:"buyer_qty" form:"buyer_qty" validate:"BuyerQtyVaildator"`
	BuyerPrice  decimal.Decimal `json:"buyer_price" form:"buyer_price" validate:"BuyerPriceVaildator"`
	SellerPrice decimal.Decimal `json:"seller_price" form:"seller_price" validate:"SellerPriceVaildator"`
	SellerQty   decimal.Decimal `json:"seller_qty" form:"seller_qty" validate:"SellerQtyVaildator"`
}

func (p CreateOrderParams) Messages() map[string]string {
	return validate.MS{
		"BuyerQtyVaildator":    "market.order.negative_buyer_qty",
		"BuyerPriceVaildator":  "market.order.negative_buyer_price",
		"SellerPriceVaildator": "market.order.negative_seller_price",
		"SellerQtyVaildator":   "market.order.negative_seller_qty",
	}
}

func (p CreateOrderParams) buyerBranch() bool {
	return p.BuyerQty.IsPositive() && p.BuyerPrice.IsPositive()
}

func (p CreateOrderParams) sellerBranch() bool {
	return !p.buyerBranch() && p.SellerQty.IsPositive() && p.SellerPrice.IsPositive()
}

func (p CreateOrderParams) BuyerQtyVaildator(BuyerQty decimal.Decimal) bool {
	return p.sellerBranch() || !BuyerQty.IsNegative()
}

func (p CreateOrderParams) BuyerPriceVaildator(BuyerPrice decimal.Decimal) bool {
	return p.sellerBranch() || !BuyerPrice.IsNegative()
}

func (p CreateOrderParams) SellerPriceVaildator(SellerPrice decimal.Decimal) bool {
	return p.buyerBranch() || !SellerPrice.IsNegative()
}

func (p CreateOrderParams) SellerQtyVaildator(SellerQty decimal.Decimal) bool {
	return p.buyerBranch() || !SellerQty.IsNegative()
}

// Vaildate runs the declared rules and folds any failures into the
// shared error body the handlers render.
func (p *CreateOrderParams) Vaildate(err_src *Errors) {
	v := validate.Struct(p)
	if !v.Validate() {
		for _, errs := range v.Errors.All() {
			for _, err := range errs {
				err_src.Add(err)
			}
		}
	}
}

// BuildIntent dispatches the four-field payload into a tagged intent:
// buyer fields win when both are positive, seller fields otherwise.
// Exactly one branch fires; anything else is an invalid order.
func (p CreateOrderParams) BuildIntent(err_src *Errors) *matching.OrderIntent {
	if p.buyerBranch() {
		intent := matching.BuyIntent(p.BuyerPrice, p.BuyerQty)
		return &intent
	}

	if p.sellerBranch() {
		intent := matching.SellIntent(p.SellerPrice, p.SellerQty)
		return &intent
	}

	err_src.Add("market.order.invalid_order_details")

	return nil
}
