package alert_test

import (
	"testing"

	"github.com/nikolayk812/foodnodes/internal/alert"
	"github.com/nikolayk812/foodnodes/internal/domain"
	"github.com/nikolayk812/foodnodes/internal/i18n"
	"github.com/nikolayk812/foodnodes/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	l := i18n.New()

	tests := []struct {
		name  string
		alert domain.Alert
		lang  string
		want  alert.Display
	}{
		{
			name:  "title defaults to level: ok",
			alert: domain.NewAlert(domain.AlertError, "error_updating_cart"),
			lang:  "en",
			want:  alert.Display{Level: domain.AlertError, Title: "Error", Message: "Could not update cart item."},
		},
		{
			name:  "messages joined by space: ok",
			alert: domain.NewAlert(domain.AlertInfo, "cart_notice_part_1", "cart_notice_part_2"),
			lang:  "en",
			want:  alert.Display{Level: domain.AlertInfo, Title: "Info", Message: "Do you want to add to cart?"},
		},
		{
			name:  "explicit title translated: ok",
			alert: domain.Alert{Level: domain.AlertSuccess, Title: "order", Messages: []string{"order_created"}},
			lang:  "sv",
			want:  alert.Display{Level: domain.AlertSuccess, Title: "Beställning", Message: "Din beställning är skapad"},
		},
		{
			name:  "unknown message key shown verbatim: ok",
			alert: domain.NewAlert(domain.AlertWarn, "Server said no"),
			lang:  "en",
			want:  alert.Display{Level: domain.AlertWarn, Title: "Warning", Message: "Server said no"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, alert.Resolve(tt.alert, l, tt.lang))
		})
	}
}

func TestPresent(t *testing.T) {
	l := i18n.New()
	store := state.NewStore(state.State{Lang: "en"})

	var shown []alert.Display
	show := func(d alert.Display) { shown = append(shown, d) }

	assert.False(t, alert.Present(store, l, show), "nothing pending")

	store.Dispatch(state.AlertShown{Alert: domain.NewAlert(domain.AlertInfo, "first")})
	store.Dispatch(state.AlertShown{Alert: domain.NewAlert(domain.AlertError, "error_updating_cart")})

	require.True(t, alert.Present(store, l, show))
	require.Len(t, shown, 1)
	assert.Equal(t, "Could not update cart item.", shown[0].Message, "latest alert replaces the pending one")
	assert.Nil(t, store.Snapshot().Alert, "reset after display")

	assert.False(t, alert.Present(store, l, show), "shown once")

	store.Dispatch(state.AlertShown{Alert: domain.Alert{Level: domain.AlertError}})
	assert.False(t, alert.Present(store, l, show), "no message")
	assert.Nil(t, store.Snapshot().Alert)
	assert.Len(t, shown, 1)
}
