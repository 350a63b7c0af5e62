package errors

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	tests := map[ErrorCategory]string{
		Argument:    "Argument Error",
		State:       "State Error",
		IO:          "I/O Error",
		Environment: "Environment Error",
		Runtime:     "Runtime Error",
	}
	for cat, expected := range tests {
		assert.Equal(t, expected, cat.String())
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := WrapWithMessage(cause, IO, "writing VERSION file")

	require.NotNil(t, err)
	assert.Equal(t, IO, err.Category)
	assert.Equal(t, "writing VERSION file: permission denied", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, Runtime))
	assert.Nil(t, WrapWithMessage(nil, IO, "ignored"))
}

func TestFormat_Plain(t *testing.T) {
	err := NewArgumentErrorWithUsage(
		`invalid bump type "huge"`,
		"semv bump <major|minor|patch> [message]",
		"Use one of: major, minor, patch",
	)

	out := Format(err, true)
	assert.Contains(t, out, `Error [Argument Error]: invalid bump type "huge"`)
	assert.Contains(t, out, "Usage: semv bump <major|minor|patch> [message]")
	assert.Contains(t, out, "• Use one of: major, minor, patch")
	assert.NotContains(t, out, "\x1b[", "plain output must carry no ANSI escapes")
}

func TestFprint_WritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, NewIOError("writing VERSION file"), true)
	assert.Equal(t, "Error [I/O Error]: writing VERSION file\n", buf.String())

	buf.Reset()
	Fprint(&buf, nil, true)
	assert.Empty(t, buf.String())
}

func TestFprintSimple_WrapsUnderCategory(t *testing.T) {
	var buf bytes.Buffer
	FprintSimple(&buf, fmt.Errorf("unexpected state"), Runtime, true)
	assert.Equal(t, "Error [Runtime Error]: unexpected state\n", buf.String())
}

func TestAsCLIError(t *testing.T) {
	cliErr := NewEnvironmentError("not a git repository")
	assert.Equal(t, cliErr, AsCLIError(cliErr))
	assert.Nil(t, AsCLIError(fmt.Errorf("plain")))
	assert.True(t, IsCLIError(cliErr))
	assert.False(t, IsCLIError(fmt.Errorf("plain")))
}
