// Package formatting renders job settings and reconciliation results for
// humans and scripts.
//
// Three output formats are supported: indented JSON (the default, and what is
// written to the log), YAML and a table.
package formatting

import (
	"fmt"

	"sparkdeploy/internal/jobsettings"
	"sparkdeploy/internal/reconciler"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"  // JSON output
	FormatYAML  OutputFormat = "yaml"  // YAML output
	FormatTable OutputFormat = "table" // Rich table output
)

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Color  bool // Enable colored output (table only)
}

// Formatter renders the values sparkdeploy prints.
type Formatter interface {
	FormatSettings(settings *jobsettings.JobSettings) (string, error)
	FormatResult(result *reconciler.Result) (string, error)
}

// ParseOutputFormat validates a user supplied format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatJSON, FormatYAML, FormatTable:
		return OutputFormat(s), nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want json, yaml or table)", s)
	}
}

// New creates the formatter for options.Format. Unknown formats fall back to JSON.
func New(options Options) Formatter {
	switch options.Format {
	case FormatYAML:
		return &YAMLFormatter{options: options}
	case FormatTable:
		return &TableFormatter{options: options}
	default:
		return &JSONFormatter{options: options}
	}
}
