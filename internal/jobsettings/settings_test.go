package jobsettings

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSettings = `{
	"name": "nightly-etl",
	"new_cluster": {
		"spark_version": "7.3.x-scala2.12",
		"node_type_id": "i3.xlarge",
		"num_workers": 2,
		"spark_env_vars": {"STAGE": "prod"}
	},
	"max_retries": 1,
	"max_concurrent_runs": 1,
	"spark_python_task": {"python_file": "dbfs:/jobs/etl.py", "parameters": ["--date", "today"]},
	"timeout_seconds": 3600,
	"email_notifications": {}
}`

func TestParse(t *testing.T) {
	raw, err := Parse([]byte(validSettings))
	require.NoError(t, err)
	assert.Contains(t, raw, "timeout_seconds")
	assert.Contains(t, raw, FieldName)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "name: foo"},
		{name: "array", input: `[1, 2]`},
		{name: "null", input: `null`},
		{name: "empty", input: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			var invalid *InvalidSettingsError
			assert.True(t, errors.As(err, &invalid))
		})
	}
}

func TestParseYAML(t *testing.T) {
	input := `
name: nightly-etl
new_cluster:
  spark_version: 7.3.x-scala2.12
  num_workers: 2
max_retries: 0
max_concurrent_runs: 1
spark_python_task:
  python_file: dbfs:/jobs/etl.py
`
	raw, err := ParseYAML([]byte(input))
	require.NoError(t, err)

	settings, err := Configure(raw)
	require.NoError(t, err)
	assert.Equal(t, "nightly-etl", settings.Name)
	assert.Equal(t, 0, settings.MaxRetries)
	assert.Equal(t, json.Number("2"), settings.NewCluster["num_workers"])
	assert.JSONEq(t, `{"python_file":"dbfs:/jobs/etl.py"}`, string(settings.SparkPythonTask))
}

func TestParseYAML_AcceptsJSON(t *testing.T) {
	raw, err := ParseYAML([]byte(validSettings))
	require.NoError(t, err)
	_, err = Configure(raw)
	require.NoError(t, err)
}

func TestConfigure_ProjectsAllowList(t *testing.T) {
	raw, err := Parse([]byte(validSettings))
	require.NoError(t, err)

	settings, err := Configure(raw)
	require.NoError(t, err)

	encoded, err := json.Marshal(settings)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(encoded, &out))

	assert.Len(t, out, 5)
	for _, field := range RequiredFields {
		assert.Contains(t, out, field)
	}
	assert.NotContains(t, out, "timeout_seconds")
	assert.NotContains(t, out, "email_notifications")
	assert.Equal(t, "nightly-etl", settings.Name)
	assert.Equal(t, 1, settings.MaxRetries)
	assert.Equal(t, 1, settings.MaxConcurrentRuns)
}

func TestConfigure_ForwardsOpaquePayload(t *testing.T) {
	raw, err := Parse([]byte(validSettings))
	require.NoError(t, err)

	settings, err := Configure(raw)
	require.NoError(t, err)

	assert.Equal(t, `{"python_file":"dbfs:/jobs/etl.py","parameters":["--date","today"]}`, string(settings.SparkPythonTask))

	cluster, err := json.Marshal(settings.NewCluster)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"spark_version": "7.3.x-scala2.12",
		"node_type_id": "i3.xlarge",
		"num_workers": 2,
		"spark_env_vars": {"STAGE": "prod"}
	}`, string(cluster))
}

func TestConfigure_MissingField(t *testing.T) {
	for _, field := range RequiredFields {
		t.Run(field, func(t *testing.T) {
			raw, err := Parse([]byte(validSettings))
			require.NoError(t, err)
			delete(raw, field)

			_, err = Configure(raw)
			require.Error(t, err)

			var invalid *InvalidSettingsError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, field, invalid.Field)
			assert.Contains(t, err.Error(), field)
			assert.Contains(t, err.Error(), "mandatory")
		})
	}
}

func TestConfigure_WrongTypes(t *testing.T) {
	tests := []struct {
		field string
		value string
	}{
		{FieldName, `42`},
		{FieldName, `null`},
		{FieldNewCluster, `"big"`},
		{FieldNewCluster, `null`},
		{FieldMaxRetries, `"3"`},
		{FieldMaxRetries, `1.5`},
		{FieldMaxRetries, `null`},
		{FieldMaxConcurrentRuns, `true`},
		{FieldMaxConcurrentRuns, ` null `},
		{FieldSparkPythonTask, `["main.py"]`},
		{FieldSparkPythonTask, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.field+"="+tt.value, func(t *testing.T) {
			raw, err := Parse([]byte(validSettings))
			require.NoError(t, err)
			raw[tt.field] = json.RawMessage(tt.value)

			_, err = Configure(raw)
			var invalid *InvalidSettingsError
			require.True(t, errors.As(err, &invalid), "expected InvalidSettingsError, got %v", err)
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestRaw_WithName(t *testing.T) {
	raw, err := Parse([]byte(validSettings))
	require.NoError(t, err)

	renamed := raw.WithName("from-env")
	settings, err := Configure(renamed)
	require.NoError(t, err)
	assert.Equal(t, "from-env", settings.Name)

	// The original is left untouched.
	original, err := Configure(raw)
	require.NoError(t, err)
	assert.Equal(t, "nightly-etl", original.Name)
}

func TestRaw_WithNameFillsMissingName(t *testing.T) {
	raw, err := Parse([]byte(`{"new_cluster": {}, "max_retries": 0, "max_concurrent_runs": 1, "spark_python_task": {}}`))
	require.NoError(t, err)

	settings, err := Configure(raw.WithName("injected"))
	require.NoError(t, err)
	assert.Equal(t, "injected", settings.Name)
}
