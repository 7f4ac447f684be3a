package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sparkdeploy/internal/app"
	"sparkdeploy/internal/config"
	"sparkdeploy/internal/formatting"
)

// newRenderCmd creates the command printing the settings a deploy would submit.
// Placeholders in spark_env_vars are checked but printed as written.
func newRenderCmd(v *viper.Viper) *cobra.Command {
	var (
		outputFormat string
		color        bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the normalized job settings without contacting the workspace",
		Long: `Reads the job settings the same way a deploy does, forces the configured
job name onto them and keeps only the fields that are submitted.

Every environment placeholder in new_cluster.spark_env_vars must resolve, but
the placeholders are printed as written so secrets never reach the output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, v, formatting.Options{Format: formatting.OutputFormat(outputFormat), Color: color})
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", string(formatting.FormatJSON), "Output format (json, yaml, table)")
	cmd.Flags().BoolVar(&color, "color", false, "Colorize table headers")
	return cmd
}

func runRender(cmd *cobra.Command, v *viper.Viper, options formatting.Options) error {
	format, err := formatting.ParseOutputFormat(string(options.Format))
	if err != nil {
		return err
	}
	options.Format = format

	cfg := config.Read(v)
	if err := cfg.ValidateSettingsSource(); err != nil {
		return err
	}

	application := app.NewApplication(cfg, app.WithLogOutput(cmd.ErrOrStderr()))
	settings, err := application.LoadSettings()
	if err != nil {
		return err
	}
	if err := application.CheckEnvironment(settings); err != nil {
		return err
	}

	out, err := formatting.New(options).FormatSettings(settings)
	if err != nil {
		return fmt.Errorf("failed to format settings: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
