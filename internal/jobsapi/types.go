package jobsapi

// Job is an entry of the jobs/list response.
type Job struct {
	JobID           int64       `json:"job_id"`
	CreatorUserName string      `json:"creator_user_name,omitempty"`
	CreatedTime     int64       `json:"created_time,omitempty"`
	Settings        JobSettings `json:"settings"`
}

// JobSettings holds the part of a remote job's settings the client looks at.
type JobSettings struct {
	Name string `json:"name"`
}

// ListResponse is the body of jobs/list. Jobs is omitted by the API when the
// workspace has none.
type ListResponse struct {
	Jobs []Job `json:"jobs"`
}

// CreateResponse is the body of jobs/create.
type CreateResponse struct {
	JobID int64 `json:"job_id"`
}

// ResetRequest is the body of jobs/reset.
type ResetRequest struct {
	JobID       int64 `json:"job_id"`
	NewSettings any   `json:"new_settings"`
}

// RunNowRequest is the body of jobs/run-now.
type RunNowRequest struct {
	JobID int64 `json:"job_id"`
}

// RunNowResponse is the body of jobs/run-now.
type RunNowResponse struct {
	RunID       int64 `json:"run_id"`
	NumberInJob int64 `json:"number_in_job,omitempty"`
}
