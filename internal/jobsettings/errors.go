package jobsettings

import (
	"fmt"
)

// RequestStructureDocs points users at the upstream description of a valid job
// specification.
const RequestStructureDocs = "https://docs.databricks.com/dev-tools/api/2.0/jobs.html#request-structure"

// InvalidSettingsError reports a malformed or incomplete job specification.
type InvalidSettingsError struct {
	// Field is the settings key at fault, empty when the payload as a whole is invalid.
	Field string
	// Reference is the environment variable a placeholder failed to resolve.
	Reference string
	// Reason is a short human readable explanation.
	Reason string
	// Err is the underlying decoding error, if any.
	Err error
}

// Error implements the error interface.
func (e *InvalidSettingsError) Error() string {
	var msg string
	switch {
	case e.Reference != "":
		msg = fmt.Sprintf("access to undefined environment variable %s while parsing %s: %s", e.Reference, e.Field, e.Reason)
	case e.Field != "":
		msg = fmt.Sprintf("%q %s", e.Field, e.Reason)
	default:
		msg = e.Reason
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying decoding error.
func (e *InvalidSettingsError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is() to match any InvalidSettingsError.
func (e *InvalidSettingsError) Is(target error) bool {
	_, ok := target.(*InvalidSettingsError)
	return ok
}

func missingFieldError(field string) *InvalidSettingsError {
	return &InvalidSettingsError{
		Field:  field,
		Reason: "is missing from the job specification and is mandatory, please refer to " + RequestStructureDocs,
	}
}
