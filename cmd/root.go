package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sparkdeploy/internal/app"
	"sparkdeploy/internal/config"
	"sparkdeploy/internal/formatting"
	"sparkdeploy/pkg/logging"
)

// Exit codes for CLI commands. Every handled failure maps to ExitCodeError so
// the CI step fails.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates any failure: configuration, settings, deployment or transport.
	ExitCodeError = 1
)

// rootCmd represents the base command for the sparkdeploy application.
// Called without a subcommand it deploys the configured job.
var rootCmd *cobra.Command

// rootCmd is assigned in init because its subcommands read rootCmd.Version,
// which would otherwise be an initialization cycle.
func init() {
	rootCmd = newRootCmd(config.NewViper())
}

// newRootCmd builds the command tree around v, which holds the PLUGIN_*
// environment and the bound flags.
func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sparkdeploy",
		Short: "Create or reset a Spark job and trigger a run",
		Long: `sparkdeploy synchronizes one named Spark job with a Databricks workspace.

It looks the job up by name, creates it when it does not exist, resets its
settings when exactly one job matches and aborts when the name is ambiguous.
The job is then run immediately.

Configuration is read from PLUGIN_* environment variables, so the binary can
be used as a Drone plugin step, or from the equivalent flags.`,
		Args: cobra.NoArgs,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		SilenceUsage: true,
		// Errors are logged once by Execute together with their kind.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd, v)
		},
	}

	if err := config.AddFlags(v, cmd.PersistentFlags()); err != nil {
		panic(fmt.Sprintf("failed to bind flags: %v", err))
	}

	cmd.AddCommand(newRenderCmd(v))
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSelfUpdateCmd())
	return cmd
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// SIGINT and SIGTERM cancel the context handed to the commands, aborting any
// API call in flight.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "sparkdeploy version %s\n" .Version}}`)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		reportError(err)
		os.Exit(getExitCode(err))
	}
}

// reportError writes the single failure line of a run.
func reportError(err error) {
	kind := app.ErrorKind(err)
	if kind == app.KindUnknown {
		logging.Error("Deploy", err, "Unexpected error raised while executing the plugin")
		return
	}
	logging.Error("Deploy", err, "%s error raised while executing the plugin", kind)
}

// getExitCode determines the exit code for err.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	return ExitCodeError
}

func runDeploy(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	application := app.NewApplication(cfg, app.WithLogOutput(cmd.OutOrStdout()))
	result, err := application.Run(cmd.Context())
	if err != nil {
		return err
	}

	summary, err := formatting.New(formatting.Options{Format: formatting.FormatTable}).FormatResult(result)
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), summary)
	return nil
}
