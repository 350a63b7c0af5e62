package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	errorLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	errorMsg    = color.New(color.FgRed).SprintFunc()
	fixLabel    = color.New(color.FgGreen, color.Bold).SprintFunc()
	usageLabel  = color.New(color.FgCyan, color.Bold).SprintFunc()
	usageText   = color.New(color.FgCyan).SprintFunc()
	bullet      = color.New(color.FgGreen).SprintFunc()
	categoryFmt = color.New(color.FgYellow).SprintFunc()
)

// Format renders a CLIError for terminal display: the categorized message,
// the correct usage when one is attached, and any remediation steps.
// plain suppresses all color codes, matching the CLI's --plain flag.
func Format(err *CLIError, plain bool) string {
	if err == nil {
		return ""
	}

	paint := func(f func(...any) string, s string) string {
		if plain {
			return s
		}
		return f(s)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s]: %s\n",
		paint(errorLabel, "Error"),
		paint(categoryFmt, err.Category.String()),
		paint(errorMsg, err.Message))

	if err.Usage != "" {
		fmt.Fprintf(&sb, "\n%s%s\n",
			paint(usageLabel, "Usage: "),
			paint(usageText, err.Usage))
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", paint(fixLabel, "To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&sb, "  %s %s\n", paint(bullet, "•"), step)
		}
	}

	return sb.String()
}

// Fprint writes the formatted error to w.
func Fprint(w io.Writer, err *CLIError, plain bool) {
	if err == nil {
		return
	}
	fmt.Fprint(w, Format(err, plain))
}

// FprintSimple writes a plain error under the given category, for failures
// that never acquired structured remediation.
func FprintSimple(w io.Writer, err error, category ErrorCategory, plain bool) {
	if err == nil {
		return
	}
	Fprint(w, &CLIError{Category: category, Message: err.Error()}, plain)
}
