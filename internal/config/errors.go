package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	// Missing holds the keys of required settings that were not provided.
	Missing []string
	errs    *multierror.Error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.errs.Error()
}

// Unwrap exposes the individual problems to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.errs.WrappedErrors()
}

// Is allows errors.Is() to match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

func (e *ValidationError) missing(key string) {
	e.Missing = append(e.Missing, key)
	e.add(fmt.Errorf("%s is required (set %s or --%s)", key, EnvName(key), FlagName(key)))
}

func (e *ValidationError) add(err error) {
	e.errs = multierror.Append(e.errs, err)
}

func (e *ValidationError) orNil() error {
	if e.errs.ErrorOrNil() == nil {
		return nil
	}
	e.errs.ErrorFormat = formatErrors
	return e
}

func formatErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}
