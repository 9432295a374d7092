package api

import (
	"time"

	"github.com/nikolayk812/foodnodes/internal/domain"
	"github.com/shopspring/decimal"
)

// CartDateItemLink is a cart line as the backend serializes it. The date and
// the item arrive as single-element relationship arrays.
type CartDateItemLink struct {
	ID                   string         `json:"id" validate:"required"`
	Quantity             int            `json:"quantity" validate:"gte=0"`
	CartDateRelationship []CartDate     `json:"cart_date_relationship" validate:"min=1,dive"`
	CartItemRelationship []CartItemLink `json:"cart_item_relationship" validate:"min=1,dive"`
}

type CartDate struct {
	ID     string    `json:"id"`
	NodeID string    `json:"node_id"`
	Date   Timestamp `json:"date"`
}

// Timestamp is a backend date with its zone name, e.g.
// {"date": "2024-03-12 00:00:00.000000", "timezone": "Europe/Stockholm"}.
type Timestamp struct {
	Date     string `json:"date"`
	Timezone string `json:"timezone,omitempty"`
}

type CartItemLink struct {
	ID       string    `json:"id"`
	Product  Product   `json:"product" validate:"required"`
	Variant  *Variant  `json:"variant"`
	Producer *Producer `json:"producer" validate:"required"`
}

type Product struct {
	ID            string          `json:"id" validate:"required"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	PriceUnit     string          `json:"price_unit"`
	PackageAmount decimal.Decimal `json:"package_amount"`
	PackageUnit   string          `json:"package_unit"`
}

type Variant struct {
	ID            string          `json:"id" validate:"required"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	PackageAmount decimal.Decimal `json:"package_amount"`
}

type Producer struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Currency *string `json:"currency"`
}

type Order struct {
	ID        string             `json:"id" validate:"required"`
	NodeID    string             `json:"node_id"`
	Date      Timestamp          `json:"date"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []CartDateItemLink `json:"items" validate:"dive"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type envelope[T any] struct {
	Data  T              `json:"data"`
	Error *errorResponse `json:"error,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToDomain maps a validated wire line. An unparsable date is kept in Raw and
// yields the invalid date key.
func (l CartDateItemLink) ToDomain() domain.CartLineItem {
	cartDate := l.CartDateRelationship[0]
	item := l.CartItemRelationship[0]

	line := domain.CartLineItem{
		ID:       l.ID,
		Quantity: l.Quantity,
		Product: domain.Product{
			ID:            item.Product.ID,
			Name:          item.Product.Name,
			Price:         item.Product.Price,
			PriceUnit:     item.Product.PriceUnit,
			PackageAmount: item.Product.PackageAmount,
			PackageUnit:   item.Product.PackageUnit,
		},
		Producer: domain.Producer{
			ID:   item.Producer.ID,
			Name: item.Producer.Name,
		},
		Date: cartDate.toDomain(),
	}

	if item.Producer.Currency != nil {
		line.Producer.Currency = *item.Producer.Currency
	}

	if item.Variant != nil {
		line.Variant = &domain.Variant{
			ID:            item.Variant.ID,
			Name:          item.Variant.Name,
			Price:         item.Variant.Price,
			PackageAmount: item.Variant.PackageAmount,
		}
	}

	return line
}

func (d CartDate) toDomain() domain.DeliveryDate {
	date := domain.DeliveryDate{
		ID:     d.ID,
		NodeID: d.NodeID,
		Raw:    d.Date.Date,
	}

	if t, err := d.Date.Time(); err == nil {
		date.Date = t
	}

	return date
}

// Time parses the timestamp in its zone; unknown zones fall back to UTC.
func (ts Timestamp) Time() (time.Time, error) {
	t, err := domain.ParseDeliveryDate(ts.Date)
	if err != nil {
		return time.Time{}, err
	}

	if ts.Timezone == "" {
		return t, nil
	}

	loc, err := time.LoadLocation(ts.Timezone)
	if err != nil {
		return t, nil
	}

	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc), nil
}

func (o Order) ToDomain() domain.Order {
	order := domain.Order{
		ID:        o.ID,
		NodeID:    o.NodeID,
		Date:      CartDate{NodeID: o.NodeID, Date: o.Date}.toDomain(),
		CreatedAt: o.CreatedAt,
		Items:     make([]domain.CartLineItem, 0, len(o.Items)),
	}

	for _, item := range o.Items {
		order.Items = append(order.Items, item.ToDomain())
	}

	return order
}

// FromDomain is the inverse of ToDomain, used by the API stub.
func FromDomain(item domain.CartLineItem) CartDateItemLink {
	var currency *string
	if c := domain.NormalizeCurrency(item.Producer.Currency); c != "" {
		currency = &c
	}

	link := CartItemLink{
		ID: item.ID,
		Product: Product{
			ID:            item.Product.ID,
			Name:          item.Product.Name,
			Price:         item.Product.Price,
			PriceUnit:     item.Product.PriceUnit,
			PackageAmount: item.Product.PackageAmount,
			PackageUnit:   item.Product.PackageUnit,
		},
		Producer: &Producer{
			ID:       item.Producer.ID,
			Name:     item.Producer.Name,
			Currency: currency,
		},
	}

	if item.Variant != nil {
		link.Variant = &Variant{
			ID:            item.Variant.ID,
			Name:          item.Variant.Name,
			Price:         item.Variant.Price,
			PackageAmount: item.Variant.PackageAmount,
		}
	}

	return CartDateItemLink{
		ID:       item.ID,
		Quantity: item.Quantity,
		CartDateRelationship: []CartDate{{
			ID:     item.Date.ID,
			NodeID: item.Date.NodeID,
			Date:   TimestampOf(item.Date.Date),
		}},
		CartItemRelationship: []CartItemLink{link},
	}
}

func TimestampOf(t time.Time) Timestamp {
	return Timestamp{
		Date:     t.Format("2006-01-02 15:04:05.000000"),
		Timezone: t.Location().String(),
	}
}

func OrderFromDomain(o domain.Order) Order {
	order := Order{
		ID:        o.ID,
		NodeID:    o.NodeID,
		Date:      TimestampOf(o.Date.Date),
		CreatedAt: o.CreatedAt,
		Items:     make([]CartDateItemLink, 0, len(o.Items)),
	}

	for _, item := range o.Items {
		order.Items = append(order.Items, FromDomain(item))
	}

	return order
}
