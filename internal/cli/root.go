// Package cli implements the semv command surface: current, bump, set,
// tag, version, and the interactive menu entered when no subcommand is
// given. All failures are converted at this boundary into a formatted
// message plus a process exit code; nothing escapes as a panic.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/semv/internal/config"
	errs "github.com/ariel-frischer/semv/internal/errors"
	"github.com/ariel-frischer/semv/internal/release"
	"github.com/ariel-frischer/semv/internal/report"
)

var (
	projectRootFlag string
	plainFlag       bool
)

var rootCmd = &cobra.Command{
	Use:   "semv",
	Short: "Manage semantic version state and changelog for a project",
	Long: `semv manages a project's semantic version and changelog.

It owns two files under the project root: VERSION (a single-line
major.minor.patch record) and CHANGELOG.md (Keep a Changelog format).
An optional TOML project descriptor's version field is kept in sync
best-effort, and annotated git tags can be created for releases.

Run without a subcommand to enter interactive mode.

Examples:
  semv current                      # Show current version information
  semv bump minor "Added feature"   # Bump version and record a changelog entry
  semv set 1.0.0                    # Set a specific version
  semv tag "First stable release"   # Create an annotated git tag`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectRootFlag, "project-root", ".", "Project root directory")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Plain output (no colors)")
}

// Execute runs the CLI and returns the process exit code. Error output
// honors the --plain flag the same way regular reporting does.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		errOut := rootCmd.ErrOrStderr()
		if cliErr := errs.AsCLIError(err); cliErr != nil {
			errs.Fprint(errOut, cliErr, plainFlag)
			if cliErr.Category == errs.Argument {
				return ExitInvalidArguments
			}
			return ExitFailure
		}
		errs.FprintSimple(errOut, err, errs.Runtime, plainFlag)
		return ExitFailure
	}
	return ExitSuccess
}

// newManager builds the release manager and reporter for the current
// invocation, honoring the persistent flags.
func newManager(cmd *cobra.Command) (*release.Manager, *report.Reporter, error) {
	cfg, err := config.Load(projectRootFlag)
	if err != nil {
		return nil, nil, errs.WrapWithMessage(err, errs.Runtime, "loading configuration")
	}

	reporter := report.New(cmd.OutOrStdout(), report.WithPlain(plainFlag))
	return release.New(projectRootFlag, cfg, reporter), reporter, nil
}
