package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidScheme          = errors.New("invalid theme")
	ErrIndexOutOfRange        = errors.New("bookmark index out of range")
	ErrBookmarkNotFound       = errors.New("bookmark not found")
	ErrMalformedPersistedData = errors.New("malformed persisted data")
)

// InvalidSchemeError reports why a color scheme document was rejected.
// Role is set when a specific color role was missing or malformed.
type InvalidSchemeError struct {
	Scheme string
	Role   string
	Reason string
}

func (e *InvalidSchemeError) Error() string {
	prefix := "invalid theme"
	if e.Scheme != "" {
		prefix = fmt.Sprintf("invalid theme %q", e.Scheme)
	}

	switch {
	case e.Role != "" && e.Reason != "":
		return fmt.Sprintf("%s: color %q: %s", prefix, e.Role, e.Reason)
	case e.Role != "":
		return fmt.Sprintf("%s: did not contain %s", prefix, e.Role)
	case e.Reason != "":
		return fmt.Sprintf("%s: %s", prefix, e.Reason)
	default:
		return prefix
	}
}

func (e *InvalidSchemeError) Is(target error) bool {
	return target == ErrInvalidScheme
}

// MissingRole returns the role named by err if err is an InvalidSchemeError
// about a missing role.
func MissingRole(err error) (string, bool) {
	var schemeErr *InvalidSchemeError
	if !errors.As(err, &schemeErr) || schemeErr.Role == "" || schemeErr.Reason != "" {
		return "", false
	}
	return schemeErr.Role, true
}
