package cli

import (
	"errors"
	"fmt"

	"github.com/wbartel/todobar/internal/model"
)

// NotFoundError indicates no task has the requested id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// ValidationError indicates a validation failure on user input.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Exit codes reported by the CLI.
const (
	ExitOK       = 0
	ExitUserErr  = 1 // validation failure, unknown id, bad flags
	ExitInternal = 2 // corrupt state or unexpected I/O failure
)

// ExitCode maps an error to the process exit code. Validation and
// not-found errors are user errors; everything else, including a
// corrupt state file, is internal.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var nf *NotFoundError
	var ve *ValidationError
	if errors.As(err, &nf) || errors.As(err, &ve) {
		return ExitUserErr
	}
	return ExitInternal
}

// IsUserError reports whether err should be shown without the usage help.
func IsUserError(err error) bool {
	return ExitCode(err) == ExitUserErr
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, model.ErrCorruptState) {
		return "error: " + err.Error() + "\n(refusing to guess; fix or move the file aside)"
	}
	return "error: " + err.Error()
}
