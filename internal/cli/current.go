package cli

import (
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/semv/internal/release"
	"github.com/ariel-frischer/semv/internal/report"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show current version information",
	Long: `Show the current semantic version and the locations of the files
semv manages for this project.

A missing VERSION file reports the default 0.1.0; it is created on the
first bump or set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, reporter, err := newManager(cmd)
		if err != nil {
			return err
		}
		showCurrent(m, reporter)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(currentCmd)
}

// showCurrent prints the version summary. Shared with interactive mode.
func showCurrent(m *release.Manager, reporter *report.Reporter) {
	reporter.Header("Current Version Information")
	reporter.Value("Version: %s", m.Current())

	if m.Store.Exists() {
		reporter.Info("version file: %s", m.Store.VersionPath)
	} else {
		reporter.Info("version file: %s (not created yet)", m.Store.VersionPath)
	}

	if m.Changelog.Exists() {
		reporter.Info("changelog: %s", m.Changelog.Path)
	} else {
		reporter.Warning("no changelog found at %s", m.Changelog.Path)
	}
}
