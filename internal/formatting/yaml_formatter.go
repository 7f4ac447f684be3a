package formatting

import (
	"gopkg.in/yaml.v3"

	"sparkdeploy/internal/jobsettings"
	"sparkdeploy/internal/reconciler"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct {
	options Options
}

// FormatSettings renders the settings as YAML using the API field names.
func (f *YAMLFormatter) FormatSettings(settings *jobsettings.JobSettings) (string, error) {
	doc, err := toDocument(settings)
	if err != nil {
		return "", err
	}
	return marshalYAML(doc)
}

// FormatResult renders a reconciliation summary as YAML.
func (f *YAMLFormatter) FormatResult(result *reconciler.Result) (string, error) {
	return marshalYAML(newResultDocument(result))
}

func marshalYAML(v interface{}) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
