package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the complete plugin configuration, read once at start-up.
type Config struct {
	Workspace       string        `mapstructure:"workspace"`
	APIToken        string        `mapstructure:"api_token"`
	JobName         string        `mapstructure:"job_name"`
	JobSettings     string        `mapstructure:"job_settings"`
	JobSettingsFile string        `mapstructure:"job_settings_file"`
	DryRun          bool          `mapstructure:"dry_run"`
	Timeout         time.Duration `mapstructure:"timeout"`
	LogLevel        string        `mapstructure:"log_level"`

	// problems holds values that could not be parsed while reading.
	problems []error
}

// flagNames maps configuration keys to their command-line flag.
var flagNames = map[string]string{
	KeyWorkspace:       "workspace",
	KeyAPIToken:        "api-token",
	KeyJobName:         "job-name",
	KeyJobSettings:     "job-settings",
	KeyJobSettingsFile: "job-settings-file",
	KeyDryRun:          "dry-run",
	KeyTimeout:         "timeout",
	KeyLogLevel:        "log-level",
}

// FlagName returns the command-line flag for a configuration key.
func FlagName(key string) string {
	return flagNames[key]
}

// EnvName returns the environment variable for a configuration key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

// NewViper returns a viper instance reading PLUGIN_* variables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	return v
}

// AddFlags registers one flag per configuration key on flags and binds them to v.
func AddFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	flags.String(flagNames[KeyWorkspace], "", "workspace base URL, e.g. https://dbc-1234.cloud.databricks.com")
	flags.String(flagNames[KeyAPIToken], "", "API token sent as bearer token")
	flags.String(flagNames[KeyJobName], "", "name of the job to create or reset")
	flags.String(flagNames[KeyJobSettings], "", "job settings as a JSON object")
	flags.String(flagNames[KeyJobSettingsFile], "", "path to a YAML or JSON file holding the job settings")
	flags.Bool(flagNames[KeyDryRun], false, "log the API calls that would change the workspace instead of issuing them")
	flags.String(flagNames[KeyTimeout], DefaultTimeout.String(), "timeout for each API call, e.g. 45s; a plain number means seconds")
	flags.String(flagNames[KeyLogLevel], DefaultLogLevel, "log level: debug, info, warn or error")

	for key, name := range flagNames {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Read(v)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Read returns the configuration held by v without validating it. Values
// that cannot be parsed are reported by Validate.
func Read(v *viper.Viper) Config {
	cfg := Config{
		Workspace:       strings.TrimSpace(v.GetString(KeyWorkspace)),
		APIToken:        strings.TrimSpace(v.GetString(KeyAPIToken)),
		JobName:         v.GetString(KeyJobName),
		JobSettings:     v.GetString(KeyJobSettings),
		JobSettingsFile: v.GetString(KeyJobSettingsFile),
		DryRun:          v.GetBool(KeyDryRun),
		LogLevel:        v.GetString(KeyLogLevel),
	}

	timeout, err := ParseTimeout(v.GetString(KeyTimeout))
	if err != nil {
		cfg.problems = append(cfg.problems, err)
	}
	cfg.Timeout = timeout
	return cfg
}

// ParseTimeout reads a duration such as "45s" or "2m". A plain number is a
// count of seconds, so PLUGIN_TIMEOUT=30 means thirty seconds. An empty value
// yields DefaultTimeout.
func ParseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTimeout, nil
	}
	invalid := fmt.Errorf("%s must be a duration such as 30s or a number of seconds, got %q", KeyTimeout, s)
	if seconds, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			return DefaultTimeout, invalid
		}
		return time.Duration(seconds * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return DefaultTimeout, invalid
	}
	return d, nil
}
