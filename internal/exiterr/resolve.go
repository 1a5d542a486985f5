package exiterr

import "strconv"

// Exit codes produced by classification. Codes from framework directives or
// explicit exit wrappers pass through unclamped; the 0-255 convention is the
// caller's concern.
const (
	// ExitSuccess is returned for a nil error.
	ExitSuccess = 0

	// ExitDefault is the catch-all code for unclassified errors.
	ExitDefault = 1

	// ExitTypeError is returned for type errors (see IsTypeError).
	ExitTypeError = 10

	// ExitGack is returned for gack internal-server failures (see IsGack).
	ExitGack = 20
)

// ExitCoder is implemented by errors that carry an explicit exit code.
type ExitCoder interface {
	ExitCode() int
}

// FrameworkExiter is implemented by errors carrying an exit directive from
// the host CLI framework. It outranks ExitCoder during resolution.
type FrameworkExiter interface {
	FrameworkExitCode() int
}

// Coder is implemented by errors that carry a symbolic or numeric error
// code. An empty string means no code is set.
type Coder interface {
	ErrorCode() string
}

// Resolve computes the process exit code for err. The precedence ladder is
// fixed, first match wins:
//
//  1. gack signature anywhere in the chain: ExitGack (20)
//  2. type error anywhere in the chain: ExitTypeError (10)
//  3. a FrameworkExiter in the chain: its code
//  4. an ExitCoder in the chain: its code
//  5. a Coder in the chain: the code's integer value if it parses base-10,
//     otherwise ExitDefault — a non-numeric code still pre-empts the fallback
//  6. fallback when positive, otherwise ExitDefault
//
// A nil err resolves to ExitSuccess. Resolve never panics and tolerates
// partially-populated and malformed errors.
func Resolve(err error, fallback int) int {
	if err == nil {
		return ExitSuccess
	}
	if IsGack(err) {
		return ExitGack
	}
	if IsTypeError(err) {
		return ExitTypeError
	}
	if code, ok := frameworkExitCode(err); ok {
		return code
	}
	if code, ok := explicitExitCode(err); ok {
		return code
	}
	if code, ok := symbolicCode(err); ok {
		if n, convErr := strconv.Atoi(code); convErr == nil {
			return n
		}
		return ExitDefault
	}
	if fallback > 0 {
		return fallback
	}
	return ExitDefault
}

// ResolveDefault resolves err with the standard fallback of ExitDefault.
func ResolveDefault(err error) int {
	return Resolve(err, ExitDefault)
}

// frameworkExitCode finds the first framework exit directive in the chain.
func frameworkExitCode(err error) (code int, ok bool) {
	found := walkChain(err, func(e error) bool {
		if fw, isFw := e.(FrameworkExiter); isFw {
			code = fw.FrameworkExitCode()
			return true
		}
		return false
	})
	return code, found
}

// explicitExitCode finds the first explicit exit code in the chain.
func explicitExitCode(err error) (code int, ok bool) {
	found := walkChain(err, func(e error) bool {
		if ec, isEc := e.(ExitCoder); isEc {
			code = ec.ExitCode()
			return true
		}
		return false
	})
	return code, found
}

// symbolicCode finds the first non-empty error code in the chain. Errors
// implementing Coder with an empty code are treated as having none, so a
// wrapper without a code does not shadow a coded cause.
func symbolicCode(err error) (code string, ok bool) {
	found := walkChain(err, func(e error) bool {
		if c, isC := e.(Coder); isC && c.ErrorCode() != "" {
			code = c.ErrorCode()
			return true
		}
		return false
	})
	return code, found
}
