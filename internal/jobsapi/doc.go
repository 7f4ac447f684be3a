// Package jobsapi is a minimal client for the jobs endpoints of a Databricks
// workspace (REST API 2.0).
//
// Only the four calls needed to deploy a job are implemented:
//
//	GET  <workspace>/api/2.0/jobs/list
//	POST <workspace>/api/2.0/jobs/create
//	POST <workspace>/api/2.0/jobs/reset
//	POST <workspace>/api/2.0/jobs/run-now
//
// Requests carry the API token as a bearer token via golang.org/x/oauth2.
// Each call is issued exactly once. A non-2xx answer is returned as an
// *APIError and a transport failure as a *ConnectionError; IsTransportFailure
// matches both.
package jobsapi
