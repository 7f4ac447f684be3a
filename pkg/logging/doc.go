// Package logging provides the structured logger used across sparkdeploy.
//
// It is a thin layer over Go's standard slog package that tags every record
// with a subsystem name and, optionally, the error that caused it.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr,
//	    slog.String("deployment", deploymentID))
//
//	logging.Info("Settings", "Parsing job settings...")
//	logging.Warn("Reconciler", "[dry run] reset would have been executed on job %d", id)
//	logging.Error("Deploy", err, "Deployment failed")
//
// # Subsystems
//
//   - **Bootstrap**: process start, configuration loading
//   - **Settings**: job settings parsing, projection and environment expansion
//   - **JobsAPI**: calls against the remote jobs endpoints
//   - **Reconciler**: create/reset/abort decisions and the final run
//   - **Deploy**: top level orchestration and failure reporting
//
// Level filtering happens in the slog handler, so filtered-out records are
// not formatted at all.
package logging
