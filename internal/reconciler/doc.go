// Package reconciler decides how a job definition is brought in line with the
// remote workspace and then starts it.
//
// # Procedure
//
//  1. Lookup: list all jobs and keep the ids of those whose settings.name is
//     exactly equal to the target name (case-sensitive, no normalization).
//  2. Zero matches: create the job.
//  3. One match: reset that job with the new settings. Anything other than an
//     empty object as the reset answer aborts before the run.
//  4. Two or more matches: abort. The reconciler never guesses which of
//     several same-named jobs to touch.
//  5. Run the created or reset job and return the run-now answer.
//
// Aborts are reported as *DeploymentError. API failures are returned wrapped
// and unchanged, so jobsapi.IsTransportFailure still matches them.
//
// In dry-run mode the lookup is still performed, but create, reset and run are
// only logged; a dry-run reset counts as successful.
package reconciler
