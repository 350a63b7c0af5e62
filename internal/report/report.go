// Package report provides the leveled terminal reporter used by semv.
// Core packages (store, changelog, release) emit status through this
// interface and carry no formatting concerns of their own.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	// Color functions with auto-detection for terminal support.
	// These fall back gracefully when colors are unavailable.
	headerFmt  = color.New(color.FgBlue, color.Bold).SprintFunc()
	successFmt = color.New(color.FgGreen).SprintFunc()
	warningFmt = color.New(color.FgYellow).SprintFunc()
	errorFmt   = color.New(color.FgRed).SprintFunc()
	infoFmt    = color.New(color.FgCyan).SprintFunc()
	valueFmt   = color.New(color.FgWhite, color.Bold).SprintFunc()
)

// Reporter writes leveled status lines to a writer. The zero value is not
// usable; construct with New.
type Reporter struct {
	out   io.Writer
	plain bool
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithPlain disables colors regardless of terminal detection. The ✓/⚠/✗/ℹ
// level icons stay, so lines remain distinguishable without color.
func WithPlain(plain bool) Option {
	return func(r *Reporter) {
		if plain {
			r.plain = true
		}
	}
}

// New creates a Reporter writing to w. Colors are disabled automatically
// when w is not a terminal.
func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{out: w, plain: !isTerminal(w)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Header prints a section header line.
func (r *Reporter) Header(text string) {
	r.line(headerFmt, "", fmt.Sprintf("\n=== %s ===", text))
}

// Success prints a checkmarked success line.
func (r *Reporter) Success(format string, args ...any) {
	r.line(successFmt, "✓ ", fmt.Sprintf(format, args...))
}

// Warning prints a warning line. Warnings never abort the operation that
// raised them.
func (r *Reporter) Warning(format string, args ...any) {
	r.line(warningFmt, "⚠ ", fmt.Sprintf(format, args...))
}

// Error prints an error line.
func (r *Reporter) Error(format string, args ...any) {
	r.line(errorFmt, "✗ ", fmt.Sprintf(format, args...))
}

// Info prints an informational line.
func (r *Reporter) Info(format string, args ...any) {
	r.line(infoFmt, "ℹ ", fmt.Sprintf(format, args...))
}

// Value prints an emphasized key line, e.g. the current version.
func (r *Reporter) Value(format string, args ...any) {
	r.line(valueFmt, "", fmt.Sprintf(format, args...))
}

// Plain reports whether styling is disabled.
func (r *Reporter) Plain() bool {
	return r.plain
}

func (r *Reporter) line(colorize func(...any) string, icon, text string) {
	if r.plain {
		fmt.Fprintln(r.out, icon+text)
		return
	}
	fmt.Fprintln(r.out, colorize(icon+text))
}

// Discard is a reporter that drops all output. Useful for tests and for
// callers that only need the return values of core operations.
var Discard = New(io.Discard, WithPlain(true))
