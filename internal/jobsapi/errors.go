package jobsapi

import (
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	pkgstrings "sparkdeploy/pkg/strings"
)

// APIError is returned when the jobs API answers with a non-success status or
// a body that cannot be decoded.
type APIError struct {
	Method     string
	Endpoint   string
	StatusCode int
	// ErrorCode and Message are filled from the standard error body
	// {"error_code": ..., "message": ...} when present.
	ErrorCode string
	Message   string
	Body      string
	// Reason is set for successful statuses whose body was unusable.
	Reason string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s: %s", e.Method, e.Endpoint, e.Reason)
	}
	if e.ErrorCode != "" || e.Message != "" {
		return fmt.Sprintf("%s %s failed with status %d: %s %s", e.Method, e.Endpoint, e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.Endpoint, e.StatusCode,
		pkgstrings.Truncate(e.Body, pkgstrings.DefaultBodyMaxLen))
}

// Is allows errors.Is() to work with wrapped errors.
func (e *APIError) Is(target error) bool {
	_, ok := target.(*APIError)
	return ok
}

func newStatusError(method, endpoint string, status int, body []byte) *APIError {
	apiErr := &APIError{
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: status,
		Body:       string(body),
	}
	var payload struct {
		ErrorCode string `json:"error_code"`
		Message   string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		apiErr.ErrorCode = payload.ErrorCode
		apiErr.Message = payload.Message
	}
	return apiErr
}

// ConnectionErrorType categorizes the type of connection error.
type ConnectionErrorType int

const (
	// ConnectionErrorUnknown indicates an unclassified connection error.
	ConnectionErrorUnknown ConnectionErrorType = iota
	// ConnectionErrorTLS indicates a TLS/certificate verification error.
	ConnectionErrorTLS
	// ConnectionErrorNetwork indicates a network connectivity error (e.g., refused, unreachable).
	ConnectionErrorNetwork
	// ConnectionErrorTimeout indicates the per-call timeout or the context deadline expired.
	ConnectionErrorTimeout
	// ConnectionErrorDNS indicates a DNS resolution failure.
	ConnectionErrorDNS
)

// String returns a human-readable name for the connection error type.
func (t ConnectionErrorType) String() string {
	switch t {
	case ConnectionErrorTLS:
		return "TLS certificate error"
	case ConnectionErrorNetwork:
		return "Network error"
	case ConnectionErrorTimeout:
		return "Connection timeout"
	case ConnectionErrorDNS:
		return "DNS resolution error"
	default:
		return "Connection error"
	}
}

// ConnectionError indicates the request never got an HTTP answer.
type ConnectionError struct {
	// Endpoint is the URL that could not be reached.
	Endpoint string
	// Type categorizes the connection error.
	Type ConnectionErrorType
	// Reason is the underlying error.
	Reason error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s calling %s: %v", e.Type, e.Endpoint, e.Reason)
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to work with wrapped errors.
func (e *ConnectionError) Is(target error) bool {
	_, ok := target.(*ConnectionError)
	return ok
}

// IsTransportFailure reports whether err came from talking to the jobs API,
// either as an error status or as a connection problem.
func IsTransportFailure(err error) bool {
	var apiErr *APIError
	var connErr *ConnectionError
	return errors.As(err, &apiErr) || errors.As(err, &connErr)
}

// ClassifyConnectionError analyzes an error and returns a ConnectionError with the appropriate type.
// If the error is nil, returns nil.
func ClassifyConnectionError(err error, endpoint string) *ConnectionError {
	if err == nil {
		return nil
	}

	connErr := &ConnectionError{Endpoint: endpoint, Type: ConnectionErrorUnknown, Reason: err}

	var dnsErr *net.DNSError
	switch {
	case isTLSError(err):
		connErr.Type = ConnectionErrorTLS
	case errors.As(err, &dnsErr):
		connErr.Type = ConnectionErrorDNS
	case isTimeoutError(err):
		connErr.Type = ConnectionErrorTimeout
	case isNetworkError(err.Error()):
		connErr.Type = ConnectionErrorNetwork
	}
	return connErr
}

func isTLSError(err error) bool {
	var certErr *x509.CertificateInvalidError
	var hostErr *x509.HostnameError
	var unknownAuthErr *x509.UnknownAuthorityError
	var systemRootsErr *x509.SystemRootsError

	if errors.As(err, &certErr) || errors.As(err, &hostErr) ||
		errors.As(err, &unknownAuthErr) || errors.As(err, &systemRootsErr) {
		return true
	}

	errStr := err.Error()
	for _, keyword := range []string{"x509:", "certificate", "tls:", "TLS handshake"} {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}

func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded")
}

func isNetworkError(errStr string) bool {
	networkKeywords := []string{
		"connection refused",
		"connection reset",
		"network is unreachable",
		"no route to host",
		"dial tcp",
		"connect:",
	}

	for _, keyword := range networkKeywords {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}
