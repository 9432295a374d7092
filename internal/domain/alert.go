package domain

type AlertLevel string

const (
	AlertInfo    AlertLevel = "info"
	AlertWarn    AlertLevel = "warn"
	AlertError   AlertLevel = "error"
	AlertSuccess AlertLevel = "success"
)

// Alert is a user-facing notification. Messages are localization keys.
type Alert struct {
	Level    AlertLevel
	Title    string
	Messages []string
}

func NewAlert(level AlertLevel, messages ...string) Alert {
	return Alert{Level: level, Messages: messages}
}
