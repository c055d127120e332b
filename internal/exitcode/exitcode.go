package exitcode

import (
	"errors"
	"os"
	"strings"

	"github.com/Arquitectura-KodeHaus/plazactl/internal/auth"
	"github.com/Arquitectura-KodeHaus/plazactl/internal/platform"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication or authorization failure
	AuthError = 3

	// ModuleUnavailable indicates the plaza has the feature module disabled
	ModuleUnavailable = 4

	// NetworkError indicates a network connectivity issue
	NetworkError = 5

	// Interrupted indicates the operation was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	code := DetermineExitCode(err)
	Exit(code)
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var authErr *auth.AuthError
	if errors.As(err, &authErr) {
		return AuthError
	}
	var apiErr *platform.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Denied() {
			return AuthError
		}
		return GeneralError
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "authentication") || strings.Contains(errMsg, "unauthorized") {
		return AuthError
	}
	if strings.Contains(errMsg, "not enabled for this plaza") {
		return ModuleUnavailable
	}
	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "unreachable") {
		return NetworkError
	}
	if strings.Contains(errMsg, "unknown command") || strings.Contains(errMsg, "required flag") ||
		strings.Contains(errMsg, "invalid flag") || strings.Contains(errMsg, "is required") {
		return UsageError
	}

	return GeneralError
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case AuthError:
		return "Authentication error"
	case ModuleUnavailable:
		return "Feature module not enabled for this plaza"
	case NetworkError:
		return "Network error"
	case Interrupted:
		return "Cancelled"
	default:
		return "Unknown error"
	}
}
