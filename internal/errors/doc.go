// Package apperrors defines structured application error types, allowing the
// programs to tell configuration problems apart from output failures and to
// map each class onto a process exit code.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types that carry a cause implement Unwrap() to support errors.Is() and
// errors.As().
package apperrors
