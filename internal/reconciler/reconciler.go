package reconciler

import (
	"context"
	"fmt"

	"sparkdeploy/internal/jobsapi"
	"sparkdeploy/internal/jobsettings"
	"sparkdeploy/pkg/logging"
)

// Reconciler runs the lookup, create-or-reset and run sequence for one job.
type Reconciler struct {
	api    JobsAPI
	dryRun bool
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithDryRun makes the reconciler log mutating calls instead of issuing them.
func WithDryRun(dryRun bool) Option {
	return func(r *Reconciler) {
		r.dryRun = dryRun
	}
}

// New creates a Reconciler driving api.
func New(api JobsAPI, opts ...Option) *Reconciler {
	r := &Reconciler{api: api}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MatchingJobIDs returns the ids of jobs whose name equals name exactly, in
// listing order.
func MatchingJobIDs(jobs []jobsapi.Job, name string) []int64 {
	ids := []int64{}
	for _, job := range jobs {
		if job.Settings.Name == name {
			ids = append(ids, job.JobID)
		}
	}
	return ids
}

// Decide maps the matching job ids onto an outcome. Two or more matches yield
// OutcomeAbort together with a *DeploymentError.
func Decide(name string, ids []int64) (Outcome, error) {
	switch len(ids) {
	case 0:
		return OutcomeCreate, nil
	case 1:
		return OutcomeReset, nil
	default:
		return OutcomeAbort, ambiguousJobError(name, ids)
	}
}

// IsResetSuccess reports whether a reset answer marks success: a decoded,
// empty JSON object.
func IsResetSuccess(resp map[string]any) bool {
	return resp != nil && len(resp) == 0
}

// Reconcile brings the job named settings.Name in line with settings and
// triggers a run.
func (r *Reconciler) Reconcile(ctx context.Context, settings *jobsettings.JobSettings) (*Result, error) {
	name := settings.Name

	jobs, err := r.api.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	ids := MatchingJobIDs(jobs, name)

	result := &Result{
		JobName:       name,
		MatchedJobIDs: ids,
		DryRun:        r.dryRun,
	}

	outcome, err := Decide(name, ids)
	result.Outcome = outcome
	if err != nil {
		return result, err
	}

	switch outcome {
	case OutcomeCreate:
		logging.Info("Reconciler", "No job '%s' found in cluster. Creating new job...", name)
		if r.dryRun {
			logging.Warn("Reconciler", "[dry run] create would have been executed")
		} else {
			id, err := r.api.Create(ctx, settings)
			if err != nil {
				return result, fmt.Errorf("failed to create job '%s': %w", name, err)
			}
			result.JobID = id
		}

	case OutcomeReset:
		result.JobID = ids[0]
		logging.Info("Reconciler", "Found job ID %v in cluster matching '%s'. Resetting job with new settings...", ids, name)

		resp := map[string]any{}
		if r.dryRun {
			logging.Warn("Reconciler", "[dry run] reset would have been executed on job %d", result.JobID)
		} else {
			resp, err = r.api.Reset(ctx, result.JobID, settings)
			if err != nil {
				return result, fmt.Errorf("failed to reset job %d: %w", result.JobID, err)
			}
		}
		if !IsResetSuccess(resp) {
			return result, resetFailedError(name, result.JobID, resp)
		}
	}

	if r.dryRun {
		logging.Warn("Reconciler", "[dry run] run-now would have been executed on job %s", describeJobID(result.JobID))
		return result, nil
	}

	run, err := r.api.Run(ctx, result.JobID)
	if err != nil {
		return result, fmt.Errorf("failed to run job %d: %w", result.JobID, err)
	}
	result.Run = run
	logging.Info("Reconciler", "New run has been scheduled for %d, run details: run_id=%d number_in_job=%d",
		result.JobID, run.RunID, run.NumberInJob)

	return result, nil
}

func describeJobID(id int64) string {
	if id == 0 {
		return "<not yet created>"
	}
	return fmt.Sprintf("%d", id)
}
