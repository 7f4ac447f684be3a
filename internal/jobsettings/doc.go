// Package jobsettings turns the loosely typed job specification handed to the
// plugin into the exact request body the remote jobs API expects.
//
// Two steps are involved:
//
//   - Configure projects the raw settings onto an allow-list of five fields
//     (name, new_cluster, max_retries, max_concurrent_runs, spark_python_task).
//     Anything else in the input is dropped, and a missing field is reported
//     as an *InvalidSettingsError naming it.
//   - ExpandEnvironment resolves "$UPPER_CASE" placeholders inside
//     new_cluster.spark_env_vars against the process environment, so secrets
//     configured on the CI step can reach the Spark driver without being
//     written into the pipeline definition.
//
// Every other value is treated as opaque payload and forwarded unchanged.
package jobsettings
