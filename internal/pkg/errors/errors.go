// Package errors extends the standard errors package with a typed
// application error that supports error chaining.
//
// Every error carries an ErrorType; Wrap accumulates context while
// preserving the cause chain, and Is checks for a type anywhere in the
// chain:
//
//	err := errors.New(errors.NotFound, "source file not found")
//	err = errors.Wrap(err, errors.System, "catalog load failed")
//	if errors.Is(err, errors.NotFound) { ... }
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError is the standard error representation of the application.
type AppError struct {
	errType ErrorType    // kind of failure
	message string       // human-readable context
	cause   error        // wrapped cause, nil for root errors
	stack   []StackFrame // call stack captured at creation
}

// Type returns the error's classification.
func (e *AppError) Type() ErrorType {
	return e.errType
}

// Message returns the error message without the cause chain.
func (e *AppError) Message() string {
	return e.message
}

// Stack returns the call stack captured when the error was created.
func (e *AppError) Stack() []StackFrame {
	return e.stack
}

// Error implements the standard error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

// Unwrap implements the standard errors.Unwrap interface.
func (e *AppError) Unwrap() error {
	return e.cause
}

// Format implements fmt.Formatter. %+v prints the cause chain and, at the
// chain boundary, the captured stack trace.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

			// The stack is printed only at the root of the chain or where an
			// external (non-AppError) cause was wrapped, so a chain of
			// AppErrors shows a single trace instead of one per layer.
			var target *AppError
			if e.cause == nil || !errors.As(e.cause, &target) {
				if len(e.stack) > 0 {
					fmt.Fprint(s, "\nStack trace:")
					for _, frame := range e.stack {
						funcName := frame.Function
						if idx := strings.LastIndex(funcName, "/"); idx != -1 {
							funcName = funcName[idx+1:]
						}
						fmt.Fprintf(s, "\n\t%s:%d %s", frame.File, frame.Line, funcName)
					}
				}
			}

			if e.cause != nil {
				fmt.Fprint(s, "\nCaused by:\n")
				if formatter, ok := e.cause.(fmt.Formatter); ok {
					formatter.Format(s, verb)
				} else {
					fmt.Fprintf(s, "\t%v", e.cause)
				}
			}
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// New creates a new root error.
func New(errType ErrorType, message string) error {
	return &AppError{
		errType: errType,
		message: message,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Newf creates a new root error from a format string.
func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{
		errType: errType,
		message: fmt.Sprintf(format, args...),
		stack:   captureStack(defaultCallerSkip),
	}
}

// Wrap wraps an existing error with additional context. Returns nil when
// err is nil so call sites can wrap unconditionally.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		errType: errType,
		message: message,
		cause:   err,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Wrapf wraps an existing error using a format string.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &AppError{
		errType: errType,
		message: fmt.Sprintf(format, args...),
		cause:   err,
		stack:   captureStack(defaultCallerSkip),
	}
}

// Is reports whether any error in the chain carries the given type.
func Is(err error, errType ErrorType) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			if appErr.errType == errType {
				return true
			}
		}
		err = errors.Unwrap(err)
	}
	return false
}

// As finds the first error in the chain matching target's type.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause walks the chain and returns the innermost error.
func RootCause(err error) error {
	if err == nil {
		return nil
	}

	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}
