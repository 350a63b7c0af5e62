package cli

// Exit codes for the semv CLI.
// These codes support scripting and CI integration.
const (
	// ExitSuccess indicates successful command execution, including a
	// clean interactive-mode exit.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure during execution.
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments, rejected
	// before any file mutation.
	ExitInvalidArguments = 2
)
