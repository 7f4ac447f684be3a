package jobsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"sparkdeploy/pkg/logging"
	pkgstrings "sparkdeploy/pkg/strings"
)

// DefaultTimeout bounds every single API call.
const DefaultTimeout = 30 * time.Second

const apiPrefix = "/api/2.0/jobs/"

// Endpoint actions below the jobs API prefix.
const (
	ActionList   = "list"
	ActionCreate = "create"
	ActionReset  = "reset"
	ActionRunNow = "run-now"
)

// Client talks to the jobs API of a single workspace.
type Client struct {
	workspace  string
	token      string
	timeout    time.Duration
	base       http.RoundTripper
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-call timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithTransport sets the round tripper underneath the bearer token transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.base = rt
	}
}

// New creates a client for the workspace URL (e.g.
// "https://dbc-1234.cloud.databricks.com") authenticating with token.
func New(workspace, token string, opts ...Option) *Client {
	c := &Client{
		workspace: strings.TrimSuffix(workspace, "/"),
		token:     token,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	c.httpClient = &http.Client{
		Timeout:   c.timeout,
		Transport: &oauth2.Transport{Source: source, Base: c.base},
	}
	return c
}

// Workspace returns the normalized workspace URL.
func (c *Client) Workspace() string {
	return c.workspace
}

// String shows the workspace but never the token.
func (c *Client) String() string {
	return fmt.Sprintf("<jobsapi.Client workspace: %s token: %s>", c.workspace, pkgstrings.MaskSecret(c.token))
}

// List returns every job defined in the workspace.
func (c *Client) List(ctx context.Context) ([]Job, error) {
	var resp ListResponse
	if err := c.call(ctx, http.MethodGet, ActionList, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}

// Create creates a job from settings and returns its id.
func (c *Client) Create(ctx context.Context, settings any) (int64, error) {
	var resp CreateResponse
	if err := c.call(ctx, http.MethodPost, ActionCreate, settings, &resp); err != nil {
		return 0, err
	}
	return resp.JobID, nil
}

// Reset overwrites all settings of jobID and returns the decoded response body
// as is. The API answers a successful reset with an empty object.
func (c *Client) Reset(ctx context.Context, jobID int64, settings any) (map[string]any, error) {
	var resp map[string]any
	req := ResetRequest{JobID: jobID, NewSettings: settings}
	if err := c.call(ctx, http.MethodPost, ActionReset, req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Run triggers an immediate run of jobID.
func (c *Client) Run(ctx context.Context, jobID int64) (*RunNowResponse, error) {
	var resp RunNowResponse
	if err := c.call(ctx, http.MethodPost, ActionRunNow, RunNowRequest{JobID: jobID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) endpoint(action string) string {
	return c.workspace + apiPrefix + action
}

// call issues one request and decodes the JSON answer into out.
func (c *Client) call(ctx context.Context, method, action string, in, out any) error {
	endpoint := c.endpoint(action)

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", action, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logging.Debug("JobsAPI", "%s %s", method, endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ClassifyConnectionError(err, endpoint)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ClassifyConnectionError(err, endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Debug("JobsAPI", "%s %s failed: status=%d body=%s", method, endpoint, resp.StatusCode,
			pkgstrings.Truncate(string(respBody), pkgstrings.DefaultBodyMaxLen))
		return newStatusError(method, endpoint, resp.StatusCode, respBody)
	}

	dec := json.NewDecoder(bytes.NewReader(respBody))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return &APIError{
			Method:     method,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
			Reason:     fmt.Sprintf("response is not valid JSON: %v", err),
		}
	}
	return nil
}
