package exitcode

import (
	"errors"
	"testing"

	"github.com/Arquitectura-KodeHaus/plazactl/internal/auth"
	"github.com/Arquitectura-KodeHaus/plazactl/internal/platform"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"Success", Success, 0},
		{"GeneralError", GeneralError, 1},
		{"UsageError", UsageError, 2},
		{"AuthError", AuthError, 3},
		{"ModuleUnavailable", ModuleUnavailable, 4},
		{"NetworkError", NetworkError, 5},
		{"Interrupted", Interrupted, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("Exit code %s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			expected: Success,
		},
		{
			name:     "auth error type",
			err:      auth.NewError(auth.ErrTokenExpired, "session expired"),
			expected: AuthError,
		},
		{
			name:     "denied api error",
			err:      &platform.APIError{StatusCode: 401, Message: "Unauthorized"},
			expected: AuthError,
		},
		{
			name:     "forbidden api error",
			err:      &platform.APIError{StatusCode: 403, Message: "Forbidden"},
			expected: AuthError,
		},
		{
			name:     "non-denied api error",
			err:      &platform.APIError{StatusCode: 500, Message: "boom"},
			expected: GeneralError,
		},
		{
			name:     "authentication message",
			err:      errors.New("authentication required"),
			expected: AuthError,
		},
		{
			name:     "module not enabled",
			err:      errors.New(`module "Parking" is not enabled for this plaza`),
			expected: ModuleUnavailable,
		},
		{
			name:     "connection refused",
			err:      errors.New("dial tcp: connection refused"),
			expected: NetworkError,
		},
		{
			name:     "timeout",
			err:      errors.New("request failed: context deadline exceeded (timeout)"),
			expected: NetworkError,
		},
		{
			name:     "missing flag",
			err:      errors.New("--username is required"),
			expected: UsageError,
		},
		{
			name:     "unknown command",
			err:      errors.New(`unknown command "plzas" for "plazactl"`),
			expected: UsageError,
		},
		{
			name:     "generic error",
			err:      errors.New("something broke"),
			expected: GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.expected {
				t.Errorf("DetermineExitCode(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}

func TestGetExitCodeDescription(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{Success, "Success"},
		{GeneralError, "General error"},
		{AuthError, "Authentication error"},
		{ModuleUnavailable, "Feature module not enabled for this plaza"},
		{99, "Unknown error"},
	}

	for _, tt := range tests {
		if got := GetExitCodeDescription(tt.code); got != tt.want {
			t.Errorf("GetExitCodeDescription(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
