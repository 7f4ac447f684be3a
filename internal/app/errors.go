package app

import (
	"errors"

	"sparkdeploy/internal/config"
	"sparkdeploy/internal/jobsapi"
	"sparkdeploy/internal/jobsettings"
	"sparkdeploy/internal/reconciler"
)

// Error kinds reported by ErrorKind.
const (
	KindConfiguration     = "Configuration"
	KindInvalidSettings   = "InvalidSettings"
	KindDeploymentFailure = "DeploymentFailure"
	KindTransportFailure  = "TransportFailure"
	KindUnknown           = "Unknown"
)

// ErrorKind classifies err for reporting.
func ErrorKind(err error) string {
	var verr *config.ValidationError
	var invalid *jobsettings.InvalidSettingsError
	var deployErr *reconciler.DeploymentError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return KindConfiguration
	case errors.As(err, &invalid):
		return KindInvalidSettings
	case errors.As(err, &deployErr):
		return KindDeploymentFailure
	case jobsapi.IsTransportFailure(err):
		return KindTransportFailure
	default:
		return KindUnknown
	}
}
