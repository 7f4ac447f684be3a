package reconciler

import (
	"fmt"
)

// DeploymentError reports a reconciliation that was aborted on purpose.
type DeploymentError struct {
	JobName string
	JobIDs  []int64
	// Response holds the unexpected reset answer, if that caused the abort.
	Response map[string]any
	Reason   string
}

// Error implements the error interface.
func (e *DeploymentError) Error() string {
	return e.Reason
}

// Is allows errors.Is() to match any DeploymentError.
func (e *DeploymentError) Is(target error) bool {
	_, ok := target.(*DeploymentError)
	return ok
}

func ambiguousJobError(name string, ids []int64) *DeploymentError {
	return &DeploymentError{
		JobName: name,
		JobIDs:  ids,
		Reason:  fmt.Sprintf("more than one job named '%s' found in cluster: %v. Aborting deployment", name, ids),
	}
}

func resetFailedError(name string, id int64, resp map[string]any) *DeploymentError {
	return &DeploymentError{
		JobName:  name,
		JobIDs:   []int64{id},
		Response: resp,
		Reason:   fmt.Sprintf("resetting job %d failed (%v), new run will not start", id, resp),
	}
}
