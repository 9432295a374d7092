package domain

import (
	"fmt"
	"time"
)

const dateKeyLayout = "20060102"

// DateKey is a delivery date reduced to year, month and day ("YYYYMMDD").
type DateKey string

// InvalidDateKey groups lines whose delivery date could not be parsed.
const InvalidDateKey DateKey = ""

type DeliveryDate struct {
	ID     string
	NodeID string
	Date   time.Time
	// Raw is the date as received, kept for lines whose date did not parse.
	Raw string
}

// Key returns the date-only grouping key, evaluated in the date's own location.
func (d DeliveryDate) Key() DateKey {
	if d.Date.IsZero() {
		return InvalidDateKey
	}
	return DateKey(d.Date.Format(dateKeyLayout))
}

func (k DateKey) Valid() bool {
	return k != InvalidDateKey
}

// Time parses the key back into midnight UTC of that day.
func (k DateKey) Time() (time.Time, error) {
	if !k.Valid() {
		return time.Time{}, fmt.Errorf("date key is empty")
	}

	t, err := time.Parse(dateKeyLayout, string(k))
	if err != nil {
		return time.Time{}, fmt.Errorf("time.Parse[%s]: %w", k, err)
	}

	return t, nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.000000",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDeliveryDate accepts the timestamp formats the backend emits.
func ParseDeliveryDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("date[%s] is not valid", raw)
}
