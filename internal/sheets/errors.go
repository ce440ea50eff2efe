package sheets

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the adapter. Callers branch on these with errors.Is;
// only ErrTransient is worth retrying.
var (
	// ErrAuth covers invalid or expired credentials (HTTP 401/403).
	ErrAuth = errors.New("spreadsheet authentication failed")

	// ErrNotFound covers an unknown sheet ID or a range that does not resolve.
	ErrNotFound = errors.New("spreadsheet or range not found")

	// ErrTransient covers quota, server-side, and network failures.
	ErrTransient = errors.New("transient spreadsheet error")
)

// APIError is the concrete error returned by the adapter. It wraps one of the
// kind sentinels above so errors.Is(err, sheets.ErrAuth) etc. work.
type APIError struct {
	Kind       error
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%v: status %d: %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error { return e.Kind }

// kindForStatus maps an HTTP status to an error kind sentinel.
// 400 is included in not-found: the values endpoint answers 400 when the
// range expression itself does not parse.
func kindForStatus(status int) error {
	switch {
	case status == 401 || status == 403:
		return ErrAuth
	case status == 400 || status == 404:
		return ErrNotFound
	default:
		return ErrTransient
	}
}
