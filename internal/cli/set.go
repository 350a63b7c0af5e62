package cli

import (
	"github.com/spf13/cobra"

	errs "github.com/ariel-frischer/semv/internal/errors"
	"github.com/ariel-frischer/semv/internal/semver"
)

var setCmd = &cobra.Command{
	Use:   "set <version>",
	Short: "Set a specific version",
	Long: `Set the version to an exact major.minor.patch triple.

The triple is validated strictly: "1.2.3" is accepted, while "1.2",
"1.2.3.4", and "v1.2.3" are rejected before any file is touched.
No monotonicity check is applied - moving the version backward is a
legal manual correction.

Examples:
  semv set 1.0.0
  semv set 0.4.12`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := semver.Parse(args[0])
		if err != nil {
			return errs.NewArgumentErrorWithUsage(
				err.Error(),
				"semv set <X.Y.Z>",
				"Use the major.minor.patch form, e.g. semv set 1.2.3",
			)
		}

		m, reporter, err := newManager(cmd)
		if err != nil {
			return err
		}

		if err := m.Set(v); err != nil {
			return err
		}

		reporter.Success("set version to %s", v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
