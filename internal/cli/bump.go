package cli

import (
	"github.com/spf13/cobra"

	errs "github.com/ariel-frischer/semv/internal/errors"
	"github.com/ariel-frischer/semv/internal/semver"
)

var bumpCmd = &cobra.Command{
	Use:   "bump <major|minor|patch> [message]",
	Short: "Bump the version, optionally recording a changelog entry",
	Long: `Bump the semantic version according to semver rules:

  major    Breaking changes (1.2.3 -> 2.0.0)
  minor    New features, backward compatible (1.2.3 -> 1.3.0)
  patch    Bug fixes, backward compatible (1.2.3 -> 1.2.4)

When a message is given, a dated entry for the new version is inserted
into the changelog. The version write and the changelog write are
sequential and independent: a changelog failure leaves the version
updated and is reported as a warning.

Examples:
  semv bump major "Breaking API changes"
  semv bump minor "Added new feature"
  semv bump patch`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		part, err := semver.ParsePart(args[0])
		if err != nil {
			return errs.NewArgumentErrorWithUsage(
				err.Error(),
				"semv bump <major|minor|patch> [message]",
				"Use one of: major, minor, patch",
			)
		}

		var message string
		if len(args) == 2 {
			message = args[1]
		}

		m, reporter, err := newManager(cmd)
		if err != nil {
			return err
		}

		next, err := m.Bump(part, message)
		if err != nil {
			return err
		}

		reporter.Success("bumped %s version to %s", part, next)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bumpCmd)
}
