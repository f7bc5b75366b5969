package prompt

import "errors"

// Errors that SecretAccessor implementations return to classify failures.
var (
	// ErrPermissionDenied is returned when the caller may not read the secret.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound is returned when the secret or its latest version does not exist.
	ErrNotFound = errors.New("secret not found")
)

// Status describes the outcome of a prompt lookup.
type Status int

const (
	// StatusFound means the template text was retrieved.
	StatusFound Status = iota
	// StatusUnconfigured means PROJECT_ID is unset and no remote call was made.
	StatusUnconfigured
	// StatusPermissionDenied means the store refused access.
	StatusPermissionDenied
	// StatusNotFound means the secret does not exist or holds no text.
	StatusNotFound
	// StatusFailed covers every other store failure.
	StatusFailed
)

// String returns the status name used in log records.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusUnconfigured:
		return "unconfigured"
	case StatusPermissionDenied:
		return "permission_denied"
	case StatusNotFound:
		return "not_found"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Lookup is the result of resolving one prompt template.
type Lookup struct {
	// Text is the template, set only when Status is StatusFound.
	Text string
	// Status classifies the outcome.
	Status Status
	// Err is the underlying cause for every status but StatusFound.
	Err error
}

// Found reports whether the lookup produced a template.
func (l Lookup) Found() bool {
	return l.Status == StatusFound
}

// Degraded reports whether the caller has to fall back to a default template.
func (l Lookup) Degraded() bool {
	return !l.Found()
}
