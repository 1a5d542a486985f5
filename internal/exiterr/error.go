package exiterr

import "fmt"

// Error is the structured error record used by plugkit plugins. All fields
// except Msg are optional; the zero value of a field means "not set" and the
// field is skipped during classification and report building.
//
// An Error never carries an exit code directly. Exit directives are separate
// wrappers (Exit, FrameworkExit) so that their presence in a chain can be
// detected with errors.As instead of field probing.
type Error struct {
	// Msg is the human-readable error description.
	Msg string

	// Name is the error category name (e.g., "TypeError"). Reports default
	// it to "Error" when empty.
	Name string

	// Code is a symbolic or numeric error code. Numeric codes (base-10
	// integer strings) resolve to that exit code; any other non-empty code
	// resolves to the default exit code 1.
	Code string

	// Actions lists suggested remediation steps shown to the user.
	Actions []string

	// Context identifies where the error occurred, typically a command name.
	Context string

	// CommandName is the plugin command that was running when the error
	// occurred.
	CommandName string

	// Data carries arbitrary structured payload attached by the thrower.
	Data any

	// Result carries a partial operation result, if one was produced before
	// the failure.
	Result any

	// Stack is the captured stack trace, if any.
	Stack string

	// Err is the underlying cause. Classification walks this chain.
	Err error
}

// Error satisfies the error interface. The cause, when present, is appended
// after the message so the full chain reads as one line.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

// Unwrap returns the underlying cause for errors.Is/errors.As traversal.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorName satisfies Namer.
func (e *Error) ErrorName() string {
	return e.Name
}

// ErrorCode satisfies Coder.
func (e *Error) ErrorCode() string {
	return e.Code
}

// StackTrace satisfies StackTracer.
func (e *Error) StackTrace() string {
	return e.Stack
}

// New creates an Error with the given message.
func New(msg string) *Error {
	return &Error{Msg: msg}
}

// Wrap creates an Error with the given message and underlying cause.
func Wrap(msg string, err error) *Error {
	return &Error{Msg: msg, Err: err}
}

// exitError attaches an explicit exit code to an error. It is created via
// Exit and detected via the ExitCoder interface.
type exitError struct {
	err  error
	code int
}

// Exit wraps err with an explicit process exit code. If err is nil the
// returned error still resolves to code, with a synthetic message.
func Exit(err error, code int) error {
	return &exitError{err: err, code: code}
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit code %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) ExitCode() int {
	return e.code
}

func (e *exitError) Unwrap() error {
	return e.err
}

// frameworkExitError carries an exit directive planted by the host CLI
// framework itself. It outranks explicit exit codes during resolution.
type frameworkExitError struct {
	err  error
	code int
}

// FrameworkExit wraps err with a host-framework exit directive.
func FrameworkExit(code int, err error) error {
	return &frameworkExitError{err: err, code: code}
}

func (e *frameworkExitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("framework exit %d", e.code)
	}
	return e.err.Error()
}

func (e *frameworkExitError) FrameworkExitCode() int {
	return e.code
}

func (e *frameworkExitError) Unwrap() error {
	return e.err
}
