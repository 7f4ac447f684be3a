// Package app wires configuration, settings normalization, the jobs API client
// and the reconciler into a single deployment run.
//
// # Sequence
//
//  1. Initialize logging at the configured level, tagging every record with a
//     fresh deployment id.
//  2. Read the job settings (inline JSON or a YAML/JSON file), force the
//     configured job name onto them and project them onto the accepted fields.
//  3. Log the settings that will be submitted, then expand environment
//     placeholders in spark_env_vars. Expansion happens after logging so
//     resolved secrets never reach the log.
//  4. Reconcile the job and trigger a run.
//
// Any failure stops the sequence. ErrorKind names the class of a failure for
// the final log line; the command layer turns every failure into exit code 1.
package app
