// Package alert turns the pending alert of the application state into a
// one-shot display: shown once, then reset.
package alert

import (
	"strings"

	"github.com/nikolayk812/foodnodes/internal/domain"
	"github.com/nikolayk812/foodnodes/internal/state"
)

type Translator interface {
	Translate(key, lang string) string
}

// Display is a resolved alert ready to be shown.
type Display struct {
	Level   domain.AlertLevel
	Title   string
	Message string
}

// Resolve translates an alert for display. The title defaults to the level
// and message keys are translated and joined by a space.
func Resolve(a domain.Alert, tr Translator, lang string) Display {
	title := a.Title
	if title == "" {
		title = string(a.Level)
	}

	messages := make([]string, 0, len(a.Messages))
	for _, m := range a.Messages {
		messages = append(messages, tr.Translate(m, lang))
	}

	return Display{
		Level:   a.Level,
		Title:   tr.Translate(title, lang),
		Message: strings.Join(messages, " "),
	}
}

// Present shows the pending alert of the store once and resets it. Alerts
// without a level or a message are cleared without being shown.
func Present(store *state.Store, tr Translator, show func(Display)) bool {
	snapshot := store.Snapshot()
	if snapshot.Alert == nil {
		return false
	}

	a := *snapshot.Alert
	store.Dispatch(state.AlertReset{})

	if a.Level == "" || len(a.Messages) == 0 {
		return false
	}

	show(Resolve(a, tr, snapshot.Lang))
	return true
}
