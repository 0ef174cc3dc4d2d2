// Package validation holds the caller-correctable rejection type shared by domain rules and the
// store adapter, so both layers report the same shape.
package validation

import (
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

// ErrValidation marks every Failure; match it with errors.Is.
var ErrValidation = crerr.New("validation failed")

// Failure is a rejected field with a human readable reason.
type Failure struct {
	Field  string
	Reason string
}

func New(field, reason string) *Failure {
	return &Failure{Field: field, Reason: reason}
}

func Newf(field, format string, args ...any) *Failure {
	return &Failure{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (f *Failure) Error() string {
	if f.Field == "" {
		return f.Reason
	}
	return f.Field + ": " + f.Reason
}

func (f *Failure) Is(target error) bool {
	return target == ErrValidation
}

// As extracts the first Failure in err's chain.
func As(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// First returns the first non-nil failure, letting rule lists short-circuit in order.
func First(failures ...*Failure) error {
	for _, f := range failures {
		if f != nil {
			return f
		}
	}
	return nil
}
