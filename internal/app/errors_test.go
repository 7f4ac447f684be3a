package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"sparkdeploy/internal/config"
	"sparkdeploy/internal/jobsapi"
	"sparkdeploy/internal/jobsettings"
	"sparkdeploy/internal/reconciler"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "configuration", err: config.Config{}.Validate(), want: KindConfiguration},
		{name: "invalid settings", err: &jobsettings.InvalidSettingsError{Field: "name", Reason: "is required"}, want: KindInvalidSettings},
		{name: "deployment", err: &reconciler.DeploymentError{JobName: "x", Reason: "ambiguous"}, want: KindDeploymentFailure},
		{name: "api error", err: fmt.Errorf("failed to list jobs: %w", &jobsapi.APIError{StatusCode: 500}), want: KindTransportFailure},
		{name: "connection error", err: &jobsapi.ConnectionError{Type: jobsapi.ConnectionErrorTimeout}, want: KindTransportFailure},
		{name: "other", err: errors.New("boom"), want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorKind(tt.err))
		})
	}
}
