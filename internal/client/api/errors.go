package api

import "fmt"

// Error is a structured backend failure: any 4xx/5xx response whose
// envelope carried a message. The message is passed through verbatim so
// callers can surface it to the user unchanged.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}
