package cartscreen

import (
	"time"

	"github.com/nikolayk812/foodnodes/internal/cart"
	"github.com/nikolayk812/foodnodes/internal/domain"
	"github.com/nikolayk812/foodnodes/internal/pricing"
	"github.com/nikolayk812/foodnodes/internal/state"
)

type Screen int

const (
	ScreenAuth Screen = iota
	ScreenLoading
	ScreenEmpty
	ScreenList
)

func (s Screen) String() string {
	switch s {
	case ScreenAuth:
		return "auth"
	case ScreenLoading:
		return "loading"
	case ScreenEmpty:
		return "empty"
	case ScreenList:
		return "list"
	default:
		return "unknown"
	}
}

type Localizer interface {
	Translate(key, lang string) string
	FormatDate(t time.Time, lang string) string
}

// View is everything the cart screen displays, already localized.
type View struct {
	Screen     Screen
	Title      string
	Empty      EmptyView
	Sections   []Section
	Totals     []domain.Money
	Refreshing bool
	SendOrder  Button
}

type EmptyView struct {
	Icon   string
	Header string
	Text   string
}

type Button struct {
	Icon    string
	Title   string
	Loading bool
}

// Section is one pickup date.
type Section struct {
	Key   domain.DateKey
	Label string
	Rows  []Row
}

type Row struct {
	ID       string
	Product  string
	Variant  string
	Producer string
	Quantity int
	Price    domain.Money
	Loading  bool
}

// Render builds the view for s. It has no side effects.
func Render(s state.State, l Localizer, calc pricing.Calculator) View {
	lang := s.Lang

	v := View{
		Title: l.Translate("cart", lang),
	}

	switch {
	case !s.Auth.LoggedIn() || s.Auth.Loading:
		v.Screen = ScreenAuth
		return v
	case s.Cart.Loading():
		v.Screen = ScreenLoading
		return v
	case !s.Cart.Refreshing && len(s.Cart.Items) == 0:
		v.Screen = ScreenEmpty
		v.Empty = EmptyView{
			Icon:   "shopping-basket",
			Header: l.Translate("cart_empty", lang),
			Text:   l.Translate("cart_empty_text", lang),
		}
		return v
	}

	v.Screen = ScreenList
	v.Refreshing = s.Cart.Refreshing
	v.Totals = cart.CurrencySubtotals(s.Cart.Items, calc)
	v.SendOrder = Button{
		Icon:    "shopping-basket",
		Title:   l.Translate("send_order", lang),
		Loading: s.Cart.Creating,
	}

	for _, bucket := range cart.GroupByDeliveryDate(s.Cart.Items) {
		section := Section{
			Key:   bucket.Key,
			Label: sectionLabel(bucket, l, lang),
			Rows:  make([]Row, 0, len(bucket.Items)),
		}

		for _, item := range bucket.Items {
			section.Rows = append(section.Rows, rowOf(item, s.Cart.IsUpdating(item.ID), calc))
		}

		v.Sections = append(v.Sections, section)
	}

	return v
}

// sectionLabel is "Pickup 12 March 2024". Lines whose dates did not parse
// share one bucket, so its label names no date.
func sectionLabel(bucket domain.Bucket, l Localizer, lang string) string {
	t, err := bucket.Key.Time()
	if err != nil {
		return l.Translate("pickup_date_unknown", lang)
	}

	return l.Translate("pickup", lang) + " " + l.FormatDate(t, lang)
}

func rowOf(item domain.CartLineItem, loading bool, calc pricing.Calculator) Row {
	row := Row{
		ID:       item.ID,
		Product:  item.Product.Name,
		Producer: item.Producer.Name,
		Quantity: item.Quantity,
		Price: domain.Money{
			Amount:   pricing.LinePrice(calc, item),
			Currency: domain.NormalizeCurrency(item.Producer.Currency),
		},
		Loading: loading,
	}

	if item.Variant != nil {
		row.Variant = item.Variant.Name
	}

	return row
}
