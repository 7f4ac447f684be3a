package formatting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"sparkdeploy/internal/reconciler"
)

// PrettyJSON formats any value as JSON indented by four spaces. It falls back
// to fmt's %v on marshaling errors.
func PrettyJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// CompactJSON formats v as single line JSON.
func CompactJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// toDocument converts v into plain maps, slices and scalars by a JSON round
// trip, so that every format uses the JSON field names. Numbers keep their
// exact value: integers become int64 or uint64 and only non-integral numbers
// become float64.
func toDocument(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return convertNumbers(doc), nil
}

func convertNumbers(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, item := range val {
			val[k] = convertNumbers(item)
		}
		return val
	case []interface{}:
		for i, item := range val {
			val[i] = convertNumbers(item)
		}
		return val
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(val.String(), 10, 64); err == nil {
			return u
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}

// resultDocument is the serialized shape of a reconciler.Result.
type resultDocument struct {
	JobName       string  `json:"job_name" yaml:"job_name"`
	Outcome       string  `json:"outcome" yaml:"outcome"`
	MatchedJobIDs []int64 `json:"matched_job_ids" yaml:"matched_job_ids"`
	JobID         int64   `json:"job_id,omitempty" yaml:"job_id,omitempty"`
	RunID         int64   `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	NumberInJob   int64   `json:"number_in_job,omitempty" yaml:"number_in_job,omitempty"`
	DryRun        bool    `json:"dry_run" yaml:"dry_run"`
}

func newResultDocument(r *reconciler.Result) resultDocument {
	doc := resultDocument{
		JobName:       r.JobName,
		Outcome:       string(r.Outcome),
		MatchedJobIDs: r.MatchedJobIDs,
		JobID:         r.JobID,
		DryRun:        r.DryRun,
	}
	if doc.MatchedJobIDs == nil {
		doc.MatchedJobIDs = []int64{}
	}
	if r.Run != nil {
		doc.RunID = r.Run.RunID
		doc.NumberInJob = r.Run.NumberInJob
	}
	return doc
}
