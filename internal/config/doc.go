// Package config loads the plugin configuration.
//
// A Drone plugin receives its step settings as PLUGIN_<KEY> environment
// variables. The same values can be passed as command-line flags, which is
// handy when running the binary outside of CI. Both sources are merged with
// viper; a flag that was set explicitly wins over the environment.
//
// # Keys
//
//	workspace          PLUGIN_WORKSPACE          --workspace          required
//	api_token          PLUGIN_API_TOKEN          --api-token          required
//	job_name           PLUGIN_JOB_NAME           --job-name           required
//	job_settings       PLUGIN_JOB_SETTINGS       --job-settings       JSON object
//	job_settings_file  PLUGIN_JOB_SETTINGS_FILE  --job-settings-file  YAML or JSON file
//	dry_run            PLUGIN_DRY_RUN            --dry-run            default false
//	timeout            PLUGIN_TIMEOUT            --timeout            default 30s
//	log_level          PLUGIN_LOG_LEVEL          --log-level          default info
//
// Exactly one of job_settings and job_settings_file must be given.
//
// Load returns a *ValidationError listing every problem at once rather than
// stopping at the first missing key.
package config
