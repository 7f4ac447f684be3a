package reconciler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkdeploy/internal/jobsapi"
	"sparkdeploy/internal/jobsettings"
)

// fakeJobsAPI records every call and answers from canned values.
type fakeJobsAPI struct {
	jobs    []jobsapi.Job
	listErr error

	createID  int64
	createErr error

	resetResp map[string]any
	resetErr  error

	runResp *jobsapi.RunNowResponse
	runErr  error

	calls       []string
	resetJobID  int64
	runJobID    int64
	sentPayload any
}

func (f *fakeJobsAPI) List(ctx context.Context) ([]jobsapi.Job, error) {
	f.calls = append(f.calls, "list")
	return f.jobs, f.listErr
}

func (f *fakeJobsAPI) Create(ctx context.Context, settings any) (int64, error) {
	f.calls = append(f.calls, "create")
	f.sentPayload = settings
	return f.createID, f.createErr
}

func (f *fakeJobsAPI) Reset(ctx context.Context, jobID int64, settings any) (map[string]any, error) {
	f.calls = append(f.calls, "reset")
	f.resetJobID = jobID
	f.sentPayload = settings
	return f.resetResp, f.resetErr
}

func (f *fakeJobsAPI) Run(ctx context.Context, jobID int64) (*jobsapi.RunNowResponse, error) {
	f.calls = append(f.calls, "run")
	f.runJobID = jobID
	return f.runResp, f.runErr
}

func job(id int64, name string) jobsapi.Job {
	return jobsapi.Job{JobID: id, Settings: jobsapi.JobSettings{Name: name}}
}

func testSettings(name string) *jobsettings.JobSettings {
	return &jobsettings.JobSettings{
		Name:              name,
		NewCluster:        map[string]any{"num_workers": 1},
		MaxRetries:        0,
		MaxConcurrentRuns: 1,
		SparkPythonTask:   []byte(`{"python_file":"dbfs:/main.py"}`),
	}
}

func TestMatchingJobIDs(t *testing.T) {
	jobs := []jobsapi.Job{
		job(1, "X"),
		job(2, "x"),
		job(3, "X "),
		job(4, "X"),
		job(5, "Y"),
	}

	assert.Equal(t, []int64{1, 4}, MatchingJobIDs(jobs, "X"))
	assert.Equal(t, []int64{2}, MatchingJobIDs(jobs, "x"))
	assert.Empty(t, MatchingJobIDs(jobs, "Z"))
	assert.Empty(t, MatchingJobIDs(nil, "X"))
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		ids      []int64
		expected Outcome
		wantErr  bool
	}{
		{name: "no match", ids: nil, expected: OutcomeCreate},
		{name: "one match", ids: []int64{42}, expected: OutcomeReset},
		{name: "two matches", ids: []int64{1, 2}, expected: OutcomeAbort, wantErr: true},
		{name: "many matches", ids: []int64{1, 2, 3}, expected: OutcomeAbort, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := Decide("X", tt.ids)
			assert.Equal(t, tt.expected, outcome)
			if tt.wantErr {
				var deployErr *DeploymentError
				require.True(t, errors.As(err, &deployErr))
				assert.Equal(t, tt.ids, deployErr.JobIDs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsResetSuccess(t *testing.T) {
	assert.True(t, IsResetSuccess(map[string]any{}))
	assert.False(t, IsResetSuccess(nil))
	assert.False(t, IsResetSuccess(map[string]any{"error": "nope"}))
}

func TestReconcile_CreatesWhenNoMatch(t *testing.T) {
	api := &fakeJobsAPI{
		jobs:     []jobsapi.Job{job(1, "other")},
		createID: 77,
		runResp:  &jobsapi.RunNowResponse{RunID: 500},
	}
	settings := testSettings("X")

	result, err := New(api).Reconcile(context.Background(), settings)
	require.NoError(t, err)

	assert.Equal(t, []string{"list", "create", "run"}, api.calls)
	assert.Equal(t, int64(77), api.runJobID)
	assert.Same(t, settings, api.sentPayload)
	assert.Equal(t, OutcomeCreate, result.Outcome)
	assert.Equal(t, int64(77), result.JobID)
	assert.Equal(t, int64(500), result.Run.RunID)
	assert.False(t, result.DryRun)
}

func TestReconcile_ResetsSingleMatch(t *testing.T) {
	api := &fakeJobsAPI{
		jobs:      []jobsapi.Job{job(42, "X"), job(43, "Y")},
		resetResp: map[string]any{},
		runResp:   &jobsapi.RunNowResponse{RunID: 7, NumberInJob: 2},
	}

	result, err := New(api).Reconcile(context.Background(), testSettings("X"))
	require.NoError(t, err)

	assert.Equal(t, []string{"list", "reset", "run"}, api.calls)
	assert.Equal(t, int64(42), api.resetJobID)
	assert.Equal(t, int64(42), api.runJobID)
	assert.Equal(t, OutcomeReset, result.Outcome)
	assert.Equal(t, []int64{42}, result.MatchedJobIDs)
	assert.Equal(t, &jobsapi.RunNowResponse{RunID: 7, NumberInJob: 2}, result.Run)
}

func TestReconcile_NonEmptyResetAborts(t *testing.T) {
	api := &fakeJobsAPI{
		jobs:      []jobsapi.Job{job(42, "X")},
		resetResp: map[string]any{"unexpected": true},
	}

	result, err := New(api).Reconcile(context.Background(), testSettings("X"))
	require.Error(t, err)

	var deployErr *DeploymentError
	require.True(t, errors.As(err, &deployErr))
	assert.Equal(t, map[string]any{"unexpected": true}, deployErr.Response)
	assert.Equal(t, []string{"list", "reset"}, api.calls)
	assert.Equal(t, int64(42), result.JobID)
	assert.Nil(t, result.Run)
}

func TestReconcile_NullResetAborts(t *testing.T) {
	api := &fakeJobsAPI{
		jobs:      []jobsapi.Job{job(42, "X")},
		resetResp: nil,
	}

	_, err := New(api).Reconcile(context.Background(), testSettings("X"))
	assert.ErrorIs(t, err, &DeploymentError{})
	assert.NotContains(t, api.calls, "run")
}

func TestReconcile_AmbiguousNameAborts(t *testing.T) {
	api := &fakeJobsAPI{
		jobs: []jobsapi.Job{job(1, "X"), job(2, "X"), job(3, "Y")},
	}

	result, err := New(api).Reconcile(context.Background(), testSettings("X"))

	var deployErr *DeploymentError
	require.True(t, errors.As(err, &deployErr))
	assert.Equal(t, []int64{1, 2}, deployErr.JobIDs)
	assert.Contains(t, err.Error(), "more than one job named 'X'")
	assert.Equal(t, []string{"list"}, api.calls)
	assert.Equal(t, OutcomeAbort, result.Outcome)
}

func TestReconcile_ExactNameMatchOnly(t *testing.T) {
	api := &fakeJobsAPI{
		jobs:     []jobsapi.Job{job(1, "x"), job(2, "X-old"), job(3, " X")},
		createID: 9,
		runResp:  &jobsapi.RunNowResponse{RunID: 1},
	}

	result, err := New(api).Reconcile(context.Background(), testSettings("X"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeCreate, result.Outcome)
}

func TestReconcile_APIErrorsShortCircuit(t *testing.T) {
	transportErr := &jobsapi.APIError{Method: "POST", Endpoint: "e", StatusCode: 500}

	tests := []struct {
		name          string
		api           *fakeJobsAPI
		expectedCalls []string
	}{
		{
			name:          "list fails",
			api:           &fakeJobsAPI{listErr: transportErr},
			expectedCalls: []string{"list"},
		},
		{
			name:          "create fails",
			api:           &fakeJobsAPI{createErr: transportErr},
			expectedCalls: []string{"list", "create"},
		},
		{
			name:          "reset fails",
			api:           &fakeJobsAPI{jobs: []jobsapi.Job{job(1, "X")}, resetErr: transportErr},
			expectedCalls: []string{"list", "reset"},
		},
		{
			name:          "run fails",
			api:           &fakeJobsAPI{createID: 5, runErr: transportErr},
			expectedCalls: []string{"list", "create", "run"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.api).Reconcile(context.Background(), testSettings("X"))
			require.Error(t, err)
			assert.True(t, jobsapi.IsTransportFailure(err))
			assert.Equal(t, tt.expectedCalls, tt.api.calls)
		})
	}
}

func TestReconcile_DryRun(t *testing.T) {
	t.Run("create path", func(t *testing.T) {
		api := &fakeJobsAPI{}

		result, err := New(api, WithDryRun(true)).Reconcile(context.Background(), testSettings("X"))
		require.NoError(t, err)
		assert.Equal(t, []string{"list"}, api.calls)
		assert.Equal(t, OutcomeCreate, result.Outcome)
		assert.True(t, result.DryRun)
		assert.Zero(t, result.JobID)
		assert.Nil(t, result.Run)
	})

	t.Run("reset path", func(t *testing.T) {
		api := &fakeJobsAPI{jobs: []jobsapi.Job{job(42, "X")}}

		result, err := New(api, WithDryRun(true)).Reconcile(context.Background(), testSettings("X"))
		require.NoError(t, err)
		assert.Equal(t, []string{"list"}, api.calls)
		assert.Equal(t, OutcomeReset, result.Outcome)
		assert.Equal(t, int64(42), result.JobID)
	})

	t.Run("ambiguous still aborts", func(t *testing.T) {
		api := &fakeJobsAPI{jobs: []jobsapi.Job{job(1, "X"), job(2, "X")}}

		_, err := New(api, WithDryRun(true)).Reconcile(context.Background(), testSettings("X"))
		assert.ErrorIs(t, err, &DeploymentError{})
		assert.Equal(t, []string{"list"}, api.calls)
	})
}
