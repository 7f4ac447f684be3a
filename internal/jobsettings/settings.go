package jobsettings

import (
	"bytes"
	"encoding/json"

	"sigs.k8s.io/yaml"
)

// Settings keys forwarded to the jobs API, in the order they are checked.
const (
	FieldName              = "name"
	FieldNewCluster        = "new_cluster"
	FieldMaxRetries        = "max_retries"
	FieldMaxConcurrentRuns = "max_concurrent_runs"
	FieldSparkPythonTask   = "spark_python_task"

	// FieldSparkEnvVars lives inside new_cluster.
	FieldSparkEnvVars = "spark_env_vars"
)

// RequiredFields lists every key Configure keeps.
var RequiredFields = []string{
	FieldName,
	FieldNewCluster,
	FieldMaxRetries,
	FieldMaxConcurrentRuns,
	FieldSparkPythonTask,
}

// Raw is a job specification as supplied by the user, before projection.
type Raw map[string]json.RawMessage

// JobSettings is the projected specification sent to the jobs API.
type JobSettings struct {
	Name              string          `json:"name" yaml:"name"`
	NewCluster        map[string]any  `json:"new_cluster" yaml:"new_cluster"`
	MaxRetries        int             `json:"max_retries" yaml:"max_retries"`
	MaxConcurrentRuns int             `json:"max_concurrent_runs" yaml:"max_concurrent_runs"`
	SparkPythonTask   json.RawMessage `json:"spark_python_task" yaml:"-"`
}

// Parse decodes a JSON encoded job specification.
func Parse(data []byte) (Raw, error) {
	var raw Raw
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &InvalidSettingsError{Reason: "job settings is not a valid JSON parsable object", Err: err}
	}
	if raw == nil {
		return nil, &InvalidSettingsError{Reason: "job settings must be a JSON object"}
	}
	return raw, nil
}

// ParseYAML decodes a job specification written as YAML. JSON input is
// accepted as well since it is a subset of YAML.
func ParseYAML(data []byte) (Raw, error) {
	converted, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, &InvalidSettingsError{Reason: "job settings file is neither valid YAML nor JSON", Err: err}
	}
	return Parse(converted)
}

// WithName returns a copy of r whose name is replaced by the given job name.
func (r Raw) WithName(name string) Raw {
	out := make(Raw, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	encoded, _ := json.Marshal(name)
	out[FieldName] = encoded
	return out
}

// Configure projects raw onto the fields accepted by the jobs API. Unknown
// keys are dropped. The first missing field is reported.
func Configure(raw Raw) (*JobSettings, error) {
	for _, field := range RequiredFields {
		if _, ok := raw[field]; !ok {
			return nil, missingFieldError(field)
		}
	}

	settings := &JobSettings{}

	for _, field := range []string{FieldName, FieldMaxRetries, FieldMaxConcurrentRuns} {
		if isNull(raw[field]) {
			return nil, &InvalidSettingsError{Field: field, Reason: "must not be null"}
		}
	}

	if err := json.Unmarshal(raw[FieldName], &settings.Name); err != nil {
		return nil, &InvalidSettingsError{Field: FieldName, Reason: "must be a string", Err: err}
	}

	cluster, err := decodeObject(raw[FieldNewCluster])
	if err != nil {
		return nil, &InvalidSettingsError{Field: FieldNewCluster, Reason: "must be an object", Err: err}
	}
	if cluster == nil {
		return nil, &InvalidSettingsError{Field: FieldNewCluster, Reason: "must be an object"}
	}
	settings.NewCluster = cluster

	if err := json.Unmarshal(raw[FieldMaxRetries], &settings.MaxRetries); err != nil {
		return nil, &InvalidSettingsError{Field: FieldMaxRetries, Reason: "must be an integer", Err: err}
	}
	if err := json.Unmarshal(raw[FieldMaxConcurrentRuns], &settings.MaxConcurrentRuns); err != nil {
		return nil, &InvalidSettingsError{Field: FieldMaxConcurrentRuns, Reason: "must be an integer", Err: err}
	}

	task, err := decodeObject(raw[FieldSparkPythonTask])
	if err != nil || task == nil {
		return nil, &InvalidSettingsError{Field: FieldSparkPythonTask, Reason: "must be an object", Err: err}
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw[FieldSparkPythonTask]); err != nil {
		return nil, &InvalidSettingsError{Field: FieldSparkPythonTask, Reason: "must be an object", Err: err}
	}
	settings.SparkPythonTask = json.RawMessage(compact.Bytes())

	return settings, nil
}

// decodeObject decodes a JSON object keeping numbers as json.Number so that
// they are re-encoded exactly as received.
func decodeObject(data json.RawMessage) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// isNull reports whether data is the JSON literal null, which json.Unmarshal
// silently ignores for scalar targets.
func isNull(data json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
