package api

import "fmt"

// StatusError is a non-2xx response from the backend. The body is not
// parsed; the status line is all the UI surfaces.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %s", e.Status)
}
