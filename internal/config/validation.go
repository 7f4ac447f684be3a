package config

import (
	"fmt"
	"net/url"

	"sparkdeploy/pkg/logging"
)

// Validate checks that every required key is present and that the optional
// ones hold usable values.
func (c Config) Validate() error {
	verr := &ValidationError{}
	for _, problem := range c.problems {
		verr.add(problem)
	}

	if c.Workspace == "" {
		verr.missing(KeyWorkspace)
	} else if u, err := url.Parse(c.Workspace); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		verr.add(fmt.Errorf("%s must be an http(s) URL, got %q", KeyWorkspace, c.Workspace))
	}
	if c.APIToken == "" {
		verr.missing(KeyAPIToken)
	}
	c.validateSettingsSource(verr)
	if c.Timeout < 0 {
		verr.add(fmt.Errorf("%s must not be negative, got %s", KeyTimeout, c.Timeout))
	}

	return verr.orNil()
}

// ValidateSettingsSource checks only what is needed to build the job
// settings locally: the job name, exactly one settings source and the log
// level. The workspace and token are not required.
func (c Config) ValidateSettingsSource() error {
	verr := &ValidationError{}
	c.validateSettingsSource(verr)
	return verr.orNil()
}

func (c Config) validateSettingsSource(verr *ValidationError) {
	if c.JobName == "" {
		verr.missing(KeyJobName)
	}

	switch {
	case c.JobSettings == "" && c.JobSettingsFile == "":
		verr.missing(KeyJobSettings)
	case c.JobSettings != "" && c.JobSettingsFile != "":
		verr.add(fmt.Errorf("only one of %s and %s may be set", KeyJobSettings, KeyJobSettingsFile))
	}

	if _, err := logging.ParseLogLevel(c.LogLevel); err != nil {
		verr.add(fmt.Errorf("%s: %w", KeyLogLevel, err))
	}
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() logging.LogLevel {
	level, _ := logging.ParseLogLevel(c.LogLevel)
	return level
}
