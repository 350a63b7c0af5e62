package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/ariel-frischer/semv/internal/errors"
)

// runCLI executes the root command against dir with plain output and the
// given stdin script, returning everything written to stdout/stderr.
func runCLI(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--plain", "--project-root", dir}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCurrentCommand(t *testing.T) {
	t.Run("empty project reports default version", func(t *testing.T) {
		dir := t.TempDir()

		out, err := runCLI(t, dir, "", "current")

		require.NoError(t, err)
		assert.Contains(t, out, "Current Version Information")
		assert.Contains(t, out, "Version: 0.1.0")
		assert.Contains(t, out, "(not created yet)")
		assert.Contains(t, out, "no changelog found")
	})

	t.Run("reads existing version file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "VERSION"), []byte("3.2.1\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "CHANGELOG.md"), []byte("# Changelog\n"), 0o644))

		out, err := runCLI(t, dir, "", "current")

		require.NoError(t, err)
		assert.Contains(t, out, "Version: 3.2.1")
		assert.NotContains(t, out, "(not created yet)")
		assert.Contains(t, out, "changelog: "+filepath.Join(dir, "CHANGELOG.md"))
	})
}

func TestBumpCommand(t *testing.T) {
	t.Run("bumps patch from default and writes files", func(t *testing.T) {
		dir := t.TempDir()

		out, err := runCLI(t, dir, "", "bump", "patch", "Fixed a bug")

		require.NoError(t, err)
		assert.Contains(t, out, "bumped patch version to 0.1.1")

		data, err := os.ReadFile(filepath.Join(dir, "VERSION"))
		require.NoError(t, err)
		assert.Equal(t, "0.1.1\n", string(data))

		changelog, err := os.ReadFile(filepath.Join(dir, "CHANGELOG.md"))
		require.NoError(t, err)
		assert.Contains(t, string(changelog), "## [0.1.1]")
		assert.Contains(t, string(changelog), "- Fixed a bug")
	})

	t.Run("bump without message skips changelog", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "VERSION"), []byte("1.2.3\n"), 0o644))

		out, err := runCLI(t, dir, "", "bump", "minor")

		require.NoError(t, err)
		assert.Contains(t, out, "bumped minor version to 1.3.0")
		assert.NoFileExists(t, filepath.Join(dir, "CHANGELOG.md"))
	})

	t.Run("invalid bump kind is an argument error and mutates nothing", func(t *testing.T) {
		dir := t.TempDir()

		_, err := runCLI(t, dir, "", "bump", "huge")

		require.Error(t, err)
		cliErr := errs.AsCLIError(err)
		require.NotNil(t, cliErr)
		assert.Equal(t, errs.Argument, cliErr.Category)
		assert.NoFileExists(t, filepath.Join(dir, "VERSION"))
	})
}

func TestSetCommand(t *testing.T) {
	t.Run("writes exact version", func(t *testing.T) {
		dir := t.TempDir()

		out, err := runCLI(t, dir, "", "set", "2.0.0")

		require.NoError(t, err)
		assert.Contains(t, out, "set version to 2.0.0")

		data, err := os.ReadFile(filepath.Join(dir, "VERSION"))
		require.NoError(t, err)
		assert.Equal(t, "2.0.0\n", string(data))
	})

	t.Run("moving backward is allowed", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "VERSION"), []byte("5.0.0\n"), 0o644))

		_, err := runCLI(t, dir, "", "set", "1.0.0")

		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(dir, "VERSION"))
		require.NoError(t, err)
		assert.Equal(t, "1.0.0\n", string(data))
	})

	t.Run("rejects malformed versions before touching files", func(t *testing.T) {
		tests := map[string]string{
			"two components":    "1.2",
			"four components":   "1.2.3.4",
			"leading v":         "v1.2.3",
			"prerelease suffix": "1.2.3-rc1",
		}

		for name, input := range tests {
			t.Run(name, func(t *testing.T) {
				dir := t.TempDir()

				_, err := runCLI(t, dir, "", "set", input)

				require.Error(t, err)
				cliErr := errs.AsCLIError(err)
				require.NotNil(t, cliErr)
				assert.Equal(t, errs.Argument, cliErr.Category)
				assert.NoFileExists(t, filepath.Join(dir, "VERSION"))
			})
		}
	})
}

func TestTagCommand(t *testing.T) {
	t.Run("outside a repository warns and succeeds", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "VERSION"), []byte("1.0.0\n"), 0o644))

		out, err := runCLI(t, dir, "", "tag")

		require.NoError(t, err)
		assert.Contains(t, out, "not in a git repository")
		assert.Contains(t, out, "v1.0.0")
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "semv")
	assert.Contains(t, out, "go: go")
}

func TestInitCommand(t *testing.T) {
	t.Run("scaffolds a fresh project", func(t *testing.T) {
		dir := t.TempDir()

		out, err := runCLI(t, dir, "", "init")

		require.NoError(t, err)
		assert.Contains(t, out, "created")
		assert.FileExists(t, filepath.Join(dir, "VERSION"))
		assert.FileExists(t, filepath.Join(dir, "CHANGELOG.md"))
		assert.FileExists(t, filepath.Join(dir, ".semv", "config.yml"))
	})

	t.Run("re-run leaves existing files alone", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "VERSION"), []byte("4.0.0\n"), 0o644))

		out, err := runCLI(t, dir, "", "init")

		require.NoError(t, err)
		assert.Contains(t, out, "already exists")

		data, err := os.ReadFile(filepath.Join(dir, "VERSION"))
		require.NoError(t, err)
		assert.Equal(t, "4.0.0\n", string(data))
	})
}

func TestInteractiveMode(t *testing.T) {
	t.Run("show current then exit", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "VERSION"), []byte("0.3.0\n"), 0o644))

		out, err := runCLI(t, dir, "6\n0\n")

		require.NoError(t, err)
		assert.Contains(t, out, "Interactive Mode")
		assert.Contains(t, out, "Version: 0.3.0")
		assert.Contains(t, out, "goodbye")
	})

	t.Run("bump with message through the menu", func(t *testing.T) {
		dir := t.TempDir()

		out, err := runCLI(t, dir, "3\nFirst fix\n0\n")

		require.NoError(t, err)
		assert.Contains(t, out, "bumped patch version to 0.1.1")

		data, err := os.ReadFile(filepath.Join(dir, "VERSION"))
		require.NoError(t, err)
		assert.Equal(t, "0.1.1\n", string(data))

		changelog, err := os.ReadFile(filepath.Join(dir, "CHANGELOG.md"))
		require.NoError(t, err)
		assert.Contains(t, string(changelog), "- First fix")
	})

	t.Run("set through the menu", func(t *testing.T) {
		dir := t.TempDir()

		out, err := runCLI(t, dir, "4\n2.5.0\n0\n")

		require.NoError(t, err)
		assert.Contains(t, out, "set version to 2.5.0")
	})

	t.Run("invalid version input keeps the loop alive", func(t *testing.T) {
		dir := t.TempDir()

		out, err := runCLI(t, dir, "4\nnot-a-version\n0\n")

		require.NoError(t, err)
		assert.Contains(t, out, "invalid version format")
		assert.Contains(t, out, "goodbye")
		assert.NoFileExists(t, filepath.Join(dir, "VERSION"))
	})

	t.Run("invalid choice re-shows the menu", func(t *testing.T) {
		out, err := runCLI(t, t.TempDir(), "9\n0\n")

		require.NoError(t, err)
		assert.Contains(t, out, `invalid choice "9"`)
		assert.Contains(t, out, "Available actions")
	})

	t.Run("end of input exits cleanly", func(t *testing.T) {
		out, err := runCLI(t, t.TempDir(), "")

		require.NoError(t, err)
		assert.Contains(t, out, "exiting")
	})
}

func TestExecuteExitCodes(t *testing.T) {
	tests := map[string]struct {
		args []string
		want int
	}{
		"success":          {args: []string{"current"}, want: ExitSuccess},
		"invalid bump":     {args: []string{"bump", "huge"}, want: ExitInvalidArguments},
		"invalid version":  {args: []string{"set", "1.2"}, want: ExitInvalidArguments},
		"interactive exit": {args: nil, want: ExitSuccess},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&out)
			rootCmd.SetIn(strings.NewReader("0\n"))
			rootCmd.SetArgs(append([]string{"--plain", "--project-root", t.TempDir()}, tc.args...))

			assert.Equal(t, tc.want, Execute())
		})
	}
}

func TestExecute_PlainFlagReachesErrorOutput(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs([]string{"--plain", "--project-root", t.TempDir(), "bump", "huge"})

	assert.Equal(t, ExitInvalidArguments, Execute())
	assert.Contains(t, out.String(), `Error [Argument Error]: invalid bump type "huge"`)
	assert.Contains(t, out.String(), "Usage: semv bump <major|minor|patch> [message]")
	assert.NotContains(t, out.String(), "\x1b[", "plain error output must carry no ANSI escapes")
}
