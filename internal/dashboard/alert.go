package dashboard

import "log"

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

type AlertFunc func(message string)

func (f AlertFunc) Alert(message string) { f(message) }

// LogAlerter is used when no UI is attached.
type LogAlerter struct{}

func (LogAlerter) Alert(message string) {
	log.Printf("[alert] %s", message)
}
