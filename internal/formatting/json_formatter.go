package formatting

import (
	"encoding/json"

	"sparkdeploy/internal/jobsettings"
	"sparkdeploy/internal/reconciler"
)

// JSONFormatter provides JSON output formatting
type JSONFormatter struct {
	options Options
}

// FormatSettings renders the settings exactly as they are sent to the API.
func (f *JSONFormatter) FormatSettings(settings *jobsettings.JobSettings) (string, error) {
	b, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FormatResult renders a reconciliation summary.
func (f *JSONFormatter) FormatResult(result *reconciler.Result) (string, error) {
	b, err := json.MarshalIndent(newResultDocument(result), "", "    ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
