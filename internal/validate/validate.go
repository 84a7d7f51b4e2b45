// Package validate checks raw task input before a task is built.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MinLength = 1
	MaxLength = 200
)

// ErrRejected is wrapped by every RejectedError.
var ErrRejected = errors.New("task rejected")

// Result is the outcome of Task. Message is empty when Accepted.
type Result struct {
	Accepted bool
	Message  string
}

// RejectedError carries the user-facing message of a rejection.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string { return e.Message }
func (e *RejectedError) Unwrap() error { return ErrRejected }

// Err returns nil for an accepted result and a *RejectedError otherwise.
func (r Result) Err() error {
	if r.Accepted {
		return nil
	}
	return &RejectedError{Message: r.Message}
}

// Task validates raw task text. Whitespace-only input counts as empty.
func Task(raw string) Result {
	n := utf8.RuneCountInString(strings.TrimSpace(raw))
	switch {
	case n == 0:
		return Result{Message: "Task cannot be empty!"}
	case n < MinLength:
		return Result{Message: fmt.Sprintf("Task must be at least %d character long", MinLength)}
	case n > MaxLength:
		return Result{Message: fmt.Sprintf("Task must not exceed %d characters", MaxLength)}
	}
	return Result{Accepted: true}
}

// Remaining is the number of characters left before MaxLength; negative when over.
func Remaining(raw string) int {
	return MaxLength - utf8.RuneCountInString(raw)
}
