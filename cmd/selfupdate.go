package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// releaseRepository is the GitHub owner/repo publishing sparkdeploy releases.
// Release builds set it with
// -ldflags "-X sparkdeploy/cmd.releaseRepository=<owner>/<repo>".
var releaseRepository = ""

// errNoReleaseRepository is returned by self-update on builds that do not
// know where their releases are published.
var errNoReleaseRepository = errors.New("self-update is not available: this build has no release repository (set sparkdeploy/cmd.releaseRepository at link time)")

// releaseUpdater is the part of *selfupdate.Updater used by self-update.
type releaseUpdater interface {
	DetectLatest(ctx context.Context, repository selfupdate.Repository) (*selfupdate.Release, bool, error)
	UpdateTo(ctx context.Context, rel *selfupdate.Release, cmdPath string) error
}

// newUpdater builds the GitHub backed updater.
var newUpdater = func() (releaseUpdater, error) {
	return selfupdate.NewUpdater(selfupdate.Config{})
}

// newSelfUpdateCmd creates the Cobra command for the self-update functionality.
func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update sparkdeploy to the latest version",
		Long: `Checks the GitHub repository this build was released from for a newer
sparkdeploy release and replaces the current binary with it.

Plugin images pin a release, so this is meant for local installs.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

// runSelfUpdate replaces the running binary with the latest release when that
// release is newer.
func runSelfUpdate(cmd *cobra.Command, args []string) error {
	currentVersion := rootCmd.Version
	// Development builds do not follow semantic versioning.
	if currentVersion == "" || currentVersion == "dev" {
		return fmt.Errorf("cannot self-update a development version")
	}
	if releaseRepository == "" {
		return errNoReleaseRepository
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Current version: %s\n", currentVersion)
	fmt.Fprintf(out, "Checking %s for updates...\n", releaseRepository)

	updater, err := newUpdater()
	if err != nil {
		return fmt.Errorf("failed to create updater: %w", err)
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(releaseRepository))
	if err != nil {
		return fmt.Errorf("error detecting latest version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest release for %s could not be found", releaseRepository)
	}

	if !latest.GreaterThan(currentVersion) {
		fmt.Fprintln(out, "Current version is the latest.")
		return nil
	}

	fmt.Fprintf(out, "Found newer version: %s (published at %s)\n", latest.Version(), latest.PublishedAt)

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	fmt.Fprintf(out, "Updating %s to version %s...\n", exe, latest.Version())
	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Fprintf(out, "Successfully updated to version %s\n", latest.Version())
	return nil
}
