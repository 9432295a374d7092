// Package cart aggregates cart lines for display: buckets per delivery date
// and subtotals per producer currency.
package cart

import (
	"github.com/nikolayk812/foodnodes/internal/domain"
	"github.com/nikolayk812/foodnodes/internal/pricing"
	"github.com/shopspring/decimal"
)

// GroupByDeliveryDate buckets items by their date-only key. Buckets appear in
// the order their key is first seen and items keep their relative order.
// Lines with an unparsable date share the InvalidDateKey bucket.
func GroupByDeliveryDate(items []domain.CartLineItem) []domain.Bucket {
	buckets := make([]domain.Bucket, 0)
	index := make(map[domain.DateKey]int)

	for _, item := range items {
		key := item.Date.Key()

		i, ok := index[key]
		if !ok {
			buckets = append(buckets, domain.Bucket{Key: key})
			i = len(buckets) - 1
			index[key] = i
		}

		buckets[i].Items = append(buckets[i].Items, item)
	}

	return buckets
}

// CurrencySubtotals sums line prices per normalized producer currency, in
// order of first appearance. Missing currencies share the empty label.
func CurrencySubtotals(items []domain.CartLineItem, calc pricing.Calculator) []domain.Money {
	subtotals := make([]domain.Money, 0)
	index := make(map[string]int)

	for _, item := range items {
		code := domain.NormalizeCurrency(item.Producer.Currency)

		i, ok := index[code]
		if !ok {
			subtotals = append(subtotals, domain.Money{Amount: decimal.Zero, Currency: code})
			i = len(subtotals) - 1
			index[code] = i
		}

		subtotals[i].Amount = subtotals[i].Amount.Add(pricing.LinePrice(calc, item))
	}

	return subtotals
}

// TotalQuantity counts units across all lines.
func TotalQuantity(items []domain.CartLineItem) int {
	var total int
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// Find returns the line with the given id.
func Find(items []domain.CartLineItem, id string) (domain.CartLineItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.CartLineItem{}, false
}
