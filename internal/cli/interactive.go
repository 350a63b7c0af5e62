package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/semv/internal/release"
	"github.com/ariel-frischer/semv/internal/report"
	"github.com/ariel-frischer/semv/internal/semver"
)

// runInteractive drives the numbered menu entered when semv is invoked
// without a subcommand. It loops until the exit choice, end of input, or
// an interrupt - all of which are clean exits.
func runInteractive(cmd *cobra.Command) error {
	m, reporter, err := newManager(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	// An interrupt during a prompt is a clean exit, not a failure.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Fprintln(out)
		reporter.Info("exiting")
		os.Exit(ExitSuccess)
	}()

	reporter.Header("semv - Interactive Mode")
	showCurrent(m, reporter)
	printMenu(out)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "\nEnter your choice (0-6): ")
		choice, ok := readLine(scanner)
		if !ok {
			fmt.Fprintln(out)
			reporter.Info("exiting")
			return nil
		}

		switch choice {
		case "0":
			reporter.Info("goodbye")
			return nil
		case "1":
			interactiveBump(m, reporter, scanner, out, semver.Major)
		case "2":
			interactiveBump(m, reporter, scanner, out, semver.Minor)
		case "3":
			interactiveBump(m, reporter, scanner, out, semver.Patch)
		case "4":
			interactiveSet(m, reporter, scanner, out)
		case "5":
			interactiveTag(m, scanner, out)
		case "6":
			showCurrent(m, reporter)
		default:
			reporter.Error("invalid choice %q, enter a number between 0 and 6", choice)
			printMenu(out)
		}
	}
}

func printMenu(out io.Writer) {
	fmt.Fprint(out, `
Available actions:
  1) Bump major version
  2) Bump minor version
  3) Bump patch version
  4) Set specific version
  5) Create git tag
  6) Show current version
  0) Exit
`)
}

// readLine reads one trimmed line, reporting false at end of input.
func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func interactiveBump(m *release.Manager, reporter *report.Reporter, scanner *bufio.Scanner, out io.Writer, part semver.Part) {
	fmt.Fprintf(out, "Enter changelog message for %s bump (optional): ", part)
	message, _ := readLine(scanner)

	next, err := m.Bump(part, message)
	if err != nil {
		reporter.Error("failed to bump version: %v", err)
		return
	}
	reporter.Success("bumped %s version to %s", part, next)
}

func interactiveSet(m *release.Manager, reporter *report.Reporter, scanner *bufio.Scanner, out io.Writer) {
	fmt.Fprint(out, "Enter version (e.g. 1.2.3): ")
	input, _ := readLine(scanner)

	v, err := semver.Parse(input)
	if err != nil {
		reporter.Error("%v", err)
		return
	}

	if err := m.Set(v); err != nil {
		reporter.Error("failed to set version: %v", err)
		return
	}
	reporter.Success("set version to %s", v)
}

func interactiveTag(m *release.Manager, scanner *bufio.Scanner, out io.Writer) {
	fmt.Fprint(out, "Enter tag message (optional): ")
	message, _ := readLine(scanner)
	m.Tag(message)
}
