package domain

import "github.com/shopspring/decimal"

// CartLineItem is one product/variant selection at a quantity for a single
// delivery date. A quantity of zero means the line was removed server side.
type CartLineItem struct {
	ID       string
	Quantity int
	Product  Product
	Variant  *Variant
	Producer Producer
	Date     DeliveryDate
}

type Product struct {
	ID            string
	Name          string
	Price         decimal.Decimal
	PriceUnit     string
	PackageAmount decimal.Decimal
	PackageUnit   string
}

type Variant struct {
	ID            string
	Name          string
	Price         decimal.Decimal
	PackageAmount decimal.Decimal
}

type Producer struct {
	ID       string
	Name     string
	Currency string
}

// Bucket holds the lines of a cart that share a delivery date key.
type Bucket struct {
	Key   DateKey
	Items []CartLineItem
}
