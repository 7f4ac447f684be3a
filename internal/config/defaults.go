package config

import (
	"time"
)

// EnvPrefix is prepended to every key when reading the environment.
const EnvPrefix = "PLUGIN"

// Configuration keys.
const (
	KeyWorkspace       = "workspace"
	KeyAPIToken        = "api_token"
	KeyJobName         = "job_name"
	KeyJobSettings     = "job_settings"
	KeyJobSettingsFile = "job_settings_file"
	KeyDryRun          = "dry_run"
	KeyTimeout         = "timeout"
	KeyLogLevel        = "log_level"
)

const (
	// DefaultTimeout bounds each call to the jobs API.
	DefaultTimeout = 30 * time.Second

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
)
