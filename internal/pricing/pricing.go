// Package pricing computes the price of a cart line in its producer's currency.
package pricing

import (
	"github.com/nikolayk812/foodnodes/internal/domain"
	"github.com/shopspring/decimal"
)

// Calculator prices a product/variant selection. Implementations never
// convert between currencies.
type Calculator interface {
	Price(product domain.Product, variant *domain.Variant, quantity int) decimal.Decimal
}

// Func adapts a plain function to Calculator.
type Func func(product domain.Product, variant *domain.Variant, quantity int) decimal.Decimal

func (f Func) Price(product domain.Product, variant *domain.Variant, quantity int) decimal.Decimal {
	return f(product, variant, quantity)
}

// Price units that are sold per piece. Any other unit (kg, l, ...) is priced
// per unit of weight or volume and multiplied by the package amount.
const (
	UnitProduct = "product"
	UnitPackage = "package"
)

type calculator struct{}

func New() Calculator {
	return calculator{}
}

func (calculator) Price(product domain.Product, variant *domain.Variant, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}

	unitPrice := product.Price
	packageAmount := product.PackageAmount
	if variant != nil {
		unitPrice = variant.Price
		if variant.PackageAmount.IsPositive() {
			packageAmount = variant.PackageAmount
		}
	}

	if PricedByMeasure(product.PriceUnit) && packageAmount.IsPositive() {
		unitPrice = unitPrice.Mul(packageAmount)
	}

	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// PricedByMeasure reports whether a price unit is a weight or volume unit.
func PricedByMeasure(priceUnit string) bool {
	switch priceUnit {
	case "", UnitProduct, UnitPackage:
		return false
	}
	return true
}

// LinePrice prices a cart line.
func LinePrice(calc Calculator, item domain.CartLineItem) decimal.Decimal {
	return calc.Price(item.Product, item.Variant, item.Quantity)
}
