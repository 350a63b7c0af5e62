package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/semv/internal/config"
	errs "github.com/ariel-frischer/semv/internal/errors"
	"github.com/ariel-frischer/semv/internal/report"
	"github.com/ariel-frischer/semv/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the version, changelog, and config files for a project",
	Long: `Create the files semv manages for a project that has none yet:

  .semv/config.yml   Commented configuration template
  VERSION            Starting version (0.1.0)
  CHANGELOG.md       Keep a Changelog header with an Unreleased section

Files that already exist are left untouched, so init is safe to re-run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(projectRootFlag)
		if err != nil {
			return errs.WrapWithMessage(err, errs.Runtime, "loading configuration")
		}
		reporter := report.New(cmd.OutOrStdout(), report.WithPlain(plainFlag))

		res, err := scaffold.Run(projectRootFlag, cfg)
		if err != nil {
			return err
		}

		for _, path := range res.Created {
			reporter.Success("created %s", path)
		}
		for _, path := range res.Skipped {
			reporter.Info("%s already exists, skipping", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
