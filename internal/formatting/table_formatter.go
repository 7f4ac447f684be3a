package formatting

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"sparkdeploy/internal/jobsettings"
	"sparkdeploy/internal/reconciler"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// FormatSettings renders one row per settings field. Nested objects are shown
// as compact JSON; spark_env_vars get a row each.
func (f *TableFormatter) FormatSettings(settings *jobsettings.JobSettings) (string, error) {
	t := f.createTable()
	t.AppendHeader(table.Row{f.header("FIELD"), f.header("VALUE")})

	t.AppendRow(table.Row{jobsettings.FieldName, settings.Name})
	t.AppendRow(table.Row{jobsettings.FieldMaxRetries, settings.MaxRetries})
	t.AppendRow(table.Row{jobsettings.FieldMaxConcurrentRuns, settings.MaxConcurrentRuns})
	t.AppendRow(table.Row{jobsettings.FieldSparkPythonTask, string(settings.SparkPythonTask)})

	keys := make([]string, 0, len(settings.NewCluster))
	for k := range settings.NewCluster {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == jobsettings.FieldSparkEnvVars {
			continue
		}
		t.AppendRow(table.Row{jobsettings.FieldNewCluster + "." + k, CompactJSON(settings.NewCluster[k])})
	}

	if vars, ok := settings.NewCluster[jobsettings.FieldSparkEnvVars].(map[string]any); ok {
		names := make([]string, 0, len(vars))
		for k := range vars {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			t.AppendRow(table.Row{jobsettings.FieldSparkEnvVars + "." + k, fmt.Sprintf("%v", vars[k])})
		}
	}

	return t.Render(), nil
}

// FormatResult renders a one-row reconciliation summary.
func (f *TableFormatter) FormatResult(result *reconciler.Result) (string, error) {
	doc := newResultDocument(result)

	t := f.createTable()
	t.AppendHeader(table.Row{
		f.header("JOB"), f.header("OUTCOME"), f.header("JOB ID"), f.header("RUN ID"), f.header("DRY RUN"),
	})
	t.AppendRow(table.Row{doc.JobName, doc.Outcome, optionalID(doc.JobID), optionalID(doc.RunID), doc.DryRun})
	return t.Render(), nil
}

func (f *TableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

func (f *TableFormatter) header(s string) string {
	if !f.options.Color {
		return s
	}
	return text.FgHiCyan.Sprint(s)
}

func optionalID(id int64) string {
	if id == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", id)
}
