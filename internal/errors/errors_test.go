// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--records"),
			expected: "invalid value 42 for flag --records",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := ValidationError{Field: "fib-count", Message: "must be between 2 and 94"}
	want := `validation error for "fib-count": must be between 2 and 94`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	joined := errors.Join(err, ValidationError{Field: "iterations", Message: "must be at least 1"})
	var target ValidationError
	if !errors.As(joined, &target) {
		t.Fatal("errors.As should find a ValidationError inside errors.Join")
	}
	if target.Field != "fib-count" {
		t.Errorf("expected first field %q, got %q", "fib-count", target.Field)
	}
}

func TestOutputError(t *testing.T) {
	t.Parallel()

	cause := errors.New("broken pipe")
	err := OutputError{Target: "stdout", Cause: cause}

	if err.Error() != "writing stdout: broken pipe" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	baseErr := errors.New("base error")
	tests := []struct {
		name     string
		err      error
		format   string
		args     []any
		expected string
		isNil    bool
	}{
		{
			name:   "nil error returns nil",
			err:    nil,
			format: "context",
			isNil:  true,
		},
		{
			name:     "wraps with static message",
			err:      baseErr,
			format:   "loading profile",
			expected: "loading profile: base error",
		},
		{
			name:     "wraps with formatted message",
			err:      baseErr,
			format:   "iteration %d",
			args:     []any{3},
			expected: "iteration 3: base error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := WrapError(tt.err, tt.format, tt.args...)
			if tt.isNil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				return
			}
			if got.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got.Error())
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match the original with errors.Is")
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("run: %w", context.Canceled), true},
		{"other", errors.New("other"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.expected {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad profile"), ExitErrorConfig},
		{"validation", ValidationError{Field: "records", Message: "negative"}, ExitErrorConfig},
		{"joined validation", errors.Join(ValidationError{Field: "a"}, ValidationError{Field: "b"}), ExitErrorConfig},
		{"canceled", WrapError(context.Canceled, "iteration 2"), ExitErrorCanceled},
		{"output", OutputError{Target: "stdout", Cause: errors.New("closed")}, ExitErrorGeneric},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorConfig":   ExitErrorConfig,
		"ExitErrorCanceled": ExitErrorCanceled,
	}
	seen := make(map[int]string)
	for name, code := range codes {
		if other, dup := seen[code]; dup {
			t.Errorf("%s and %s share exit code %d", name, other, code)
		}
		seen[code] = name
	}
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess must be 0, got %d", ExitSuccess)
	}
}
