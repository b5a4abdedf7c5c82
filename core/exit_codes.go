package core

// Exit codes for the CLI.
const (
	// ExitCodeSuccess indicates clean completion (exit code 0)
	ExitCodeSuccess = 0

	// ExitCodeError indicates a runtime failure (exit code 1)
	ExitCodeError = 1

	// ExitCodeUsage indicates invalid flags or arguments (exit code 2)
	ExitCodeUsage = 2
)

// ExitCodeName returns a human-readable name for an exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitCodeSuccess:
		return "success"
	case ExitCodeError:
		return "error"
	case ExitCodeUsage:
		return "usage"
	default:
		return "unknown"
	}
}
