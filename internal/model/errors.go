package model

import "fmt"

// HTTPError wraps a non-2xx response so callers can report the status
// alongside the failing URL. Fetch failures halt the flow; there is no retry.
type HTTPError struct {
	StatusCode int
	URL        string
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d from %s: %v", e.StatusCode, e.URL, e.Err)
	}
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}
