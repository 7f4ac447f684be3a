package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"sparkdeploy/internal/config"
	"sparkdeploy/internal/formatting"
	"sparkdeploy/internal/jobsapi"
	"sparkdeploy/internal/jobsettings"
	"sparkdeploy/internal/reconciler"
	"sparkdeploy/pkg/logging"
)

// Application performs one deployment.
//
// Example usage:
//
//	application, err := app.NewApplication(cfg)
//	if err != nil {
//	    return err
//	}
//	result, err := application.Run(ctx)
type Application struct {
	config       config.Config
	deploymentID string
	api          reconciler.JobsAPI
	lookup       jobsettings.LookupFunc
	logOutput    io.Writer
	readFile     func(string) ([]byte, error)
}

// Option customizes an Application, mainly for tests.
type Option func(*Application)

// WithJobsAPI replaces the HTTP client built from the configuration.
func WithJobsAPI(api reconciler.JobsAPI) Option {
	return func(a *Application) {
		a.api = api
	}
}

// WithLookupEnv replaces os.LookupEnv for placeholder expansion.
func WithLookupEnv(lookup jobsettings.LookupFunc) Option {
	return func(a *Application) {
		a.lookup = lookup
	}
}

// WithLogOutput sets where log records are written. Defaults to stdout.
func WithLogOutput(w io.Writer) Option {
	return func(a *Application) {
		a.logOutput = w
	}
}

// NewApplication initializes logging for cfg. The jobs API client is built on
// the first Run, so an Application can render settings without a workspace.
func NewApplication(cfg config.Config, opts ...Option) *Application {
	a := &Application{
		config:       cfg,
		deploymentID: uuid.NewString(),
		lookup:       os.LookupEnv,
		logOutput:    os.Stdout,
		readFile:     os.ReadFile,
	}
	for _, opt := range opts {
		opt(a)
	}

	logging.InitForCLI(cfg.Level(), a.logOutput, slog.String("deployment", a.deploymentID))
	return a
}

func (a *Application) jobsAPI() reconciler.JobsAPI {
	if a.api == nil {
		client := jobsapi.New(a.config.Workspace, a.config.APIToken, jobsapi.WithTimeout(a.config.Timeout))
		logging.Info("Bootstrap", "The plugin has been initialized with: %s", client)
		a.api = client
	}
	return a.api
}

// DeploymentID identifies this run in the logs.
func (a *Application) DeploymentID() string {
	return a.deploymentID
}

// LoadSettings reads and projects the job settings without expanding
// environment placeholders.
func (a *Application) LoadSettings() (*jobsettings.JobSettings, error) {
	raw, err := a.readRawSettings()
	if err != nil {
		return nil, err
	}
	return jobsettings.Configure(raw.WithName(a.config.JobName))
}

func (a *Application) readRawSettings() (jobsettings.Raw, error) {
	if a.config.JobSettingsFile != "" {
		data, err := a.readFile(a.config.JobSettingsFile)
		if err != nil {
			return nil, &jobsettings.InvalidSettingsError{
				Reason: fmt.Sprintf("cannot read job settings file %s", a.config.JobSettingsFile),
				Err:    err,
			}
		}
		return jobsettings.ParseYAML(data)
	}
	return jobsettings.Parse([]byte(a.config.JobSettings))
}

// CheckEnvironment verifies that every placeholder in settings resolves,
// without modifying settings.
func (a *Application) CheckEnvironment(settings *jobsettings.JobSettings) error {
	vars, err := settings.EnvVars()
	if err != nil {
		return err
	}
	_, err = jobsettings.ExpandEnvVars(vars, a.lookup)
	return err
}

// Run executes the deployment and returns what the reconciler did. The
// configuration must have passed config.Validate.
func (a *Application) Run(ctx context.Context) (*reconciler.Result, error) {
	api := a.jobsAPI()

	logging.Info("Settings", "Parsing job settings...")
	settings, err := a.LoadSettings()
	if err != nil {
		return nil, err
	}

	logging.Info("Settings", "The job will be submitted with the following settings:\n%s", formatting.PrettyJSON(settings))

	if err := settings.ExpandEnvironment(a.lookup); err != nil {
		return nil, err
	}

	if a.config.DryRun {
		logging.Warn("Deploy", "Dry run enabled, no job will be created, reset or run")
	}

	r := reconciler.New(api, reconciler.WithDryRun(a.config.DryRun))
	return r.Reconcile(ctx, settings)
}
