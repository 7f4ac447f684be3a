package reconciler

import (
	"context"

	"sparkdeploy/internal/jobsapi"
)

// JobsAPI is the subset of the jobs API client the reconciler drives.
type JobsAPI interface {
	List(ctx context.Context) ([]jobsapi.Job, error)
	Create(ctx context.Context, settings any) (int64, error)
	Reset(ctx context.Context, jobID int64, settings any) (map[string]any, error)
	Run(ctx context.Context, jobID int64) (*jobsapi.RunNowResponse, error)
}

// Outcome is the action chosen for the target job.
type Outcome string

const (
	// OutcomeCreate means no job with the target name exists yet.
	OutcomeCreate Outcome = "Create"

	// OutcomeReset means exactly one job matches and gets new settings.
	OutcomeReset Outcome = "Reset"

	// OutcomeAbort means the name is ambiguous and nothing is touched.
	OutcomeAbort Outcome = "Abort"
)

// Result describes a finished reconciliation.
type Result struct {
	// JobName is the target job name.
	JobName string

	// Outcome is the action that was taken.
	Outcome Outcome

	// MatchedJobIDs are the ids found during lookup.
	MatchedJobIDs []int64

	// JobID is the created or reset job. It is zero after a dry-run create.
	JobID int64

	// Run is the run-now answer, nil in dry-run mode.
	Run *jobsapi.RunNowResponse

	// DryRun is true when no mutating call was issued.
	DryRun bool
}
