package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, WithPlain(true))

	r.Success("updated VERSION file to %s", "1.2.0")
	r.Warning("no CHANGELOG.md found")
	r.Error("invalid choice")
	r.Info("version file: %s", "VERSION")

	out := buf.String()
	assert.Contains(t, out, "✓ updated VERSION file to 1.2.0")
	assert.Contains(t, out, "⚠ no CHANGELOG.md found")
	assert.Contains(t, out, "✗ invalid choice")
	assert.Contains(t, out, "ℹ version file: VERSION")
}

func TestReporter_NonTerminalDefaultsToPlain(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	assert.True(t, r.Plain())

	r.Header("Current Version Information")
	assert.Equal(t, "\n=== Current Version Information ===\n", buf.String())
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	Discard.Success("ok")
	Discard.Warning("warn")
}
