package cli

import (
	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag [message]",
	Short: "Create an annotated git tag for the current version",
	Long: `Create an annotated git tag named after the current on-disk version
(with the configured prefix, "v" by default).

When no message is given, "Release version X.Y.Z" is used. Running
outside a git repository is reported as a warning, not an error.

Examples:
  semv tag
  semv tag "First stable release"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var message string
		if len(args) == 1 {
			message = args[0]
		}

		m, _, err := newManager(cmd)
		if err != nil {
			return err
		}

		m.Tag(message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
}
