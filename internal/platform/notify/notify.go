// Package notify describes the toast notifications returned with every
// mutating UI response.
package notify

import "time"

type Type string

const (
	Success Type = "success"
	Error   Type = "error"
	Info    Type = "info"
	Warning Type = "warning"
)

// DismissAfter is how long the browser keeps a toast on screen.
const DismissAfter = 3 * time.Second

type Notification struct {
	Message   string `json:"message"`
	Type      Type   `json:"type"`
	DismissMs int64  `json:"dismiss_ms"`
}

func New(message string, t Type) Notification {
	switch t {
	case Success, Error, Info, Warning:
	default:
		t = Info
	}
	return Notification{Message: message, Type: t, DismissMs: DismissAfter.Milliseconds()}
}

// Result is the JSON body of a /ui mutation.
type Result struct {
	Success      bool         `json:"success"`
	Message      string       `json:"message"`
	Notification Notification `json:"notification"`
	HTML         string       `json:"html,omitempty"`
	Redirect     string       `json:"redirect,omitempty"`
}

func Ok(message string, t Type) Result {
	return Result{Success: true, Message: message, Notification: New(message, t)}
}

func Fail(message string) Result {
	return Result{Success: false, Message: message, Notification: New(message, Error)}
}
