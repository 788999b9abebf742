// Package errutil provides error types which aggregate several failures, such as 'MultiError'.
package errutil

import (
	"strings"
)

// MultiError aggregates multiple errors into a single error value.
//
// The zero value of MultiError is ready for use.
//
// NOTE: MultiError is not safe for concurrent use and needs to be wrapped in a lock to be shared safely between
// threads.
type MultiError struct {
	errs []error

	// Prefix will be printed before the errors in this MultiError.
	Prefix string
	// Separator will separate the errors in this MultiError.
	// If omitted, defaults to "; ".
	Separator string
}

// Add adds a new error to this MultiError, nil errors are ignored.
func (m *MultiError) Add(err error) {
	if err == nil {
		return
	}

	m.errs = append(m.errs, err)
}

func (m *MultiError) Error() string {
	if len(m.errs) == 0 {
		return ""
	}

	sep := m.Separator
	if sep == "" {
		sep = "; "
	}

	msgs := make([]string, 0, len(m.errs))
	for _, err := range m.errs {
		msgs = append(msgs, err.Error())
	}

	return m.Prefix + strings.Join(msgs, sep)
}

// Unwrap returns the aggregated errors so that 'errors.Is' and 'errors.As' match any of them.
func (m *MultiError) Unwrap() []error {
	return m.errs
}

// ErrOrNil returns this MultiError if it has at least one error, or nil otherwise.
// The intended use case is the following:
//
//	return foo, errs.ErrOrNil()
func (m *MultiError) ErrOrNil() error {
	if len(m.errs) > 0 {
		return m
	}

	return nil
}
