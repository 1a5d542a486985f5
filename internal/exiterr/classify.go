package exiterr

import (
	"regexp"
	"runtime"
	"strings"
)

// gackPattern matches the incident signature of a "gack" internal server
// failure: a long numeric incident ID, a dash-separated org counter, and a
// parenthesized (possibly negative) error number.
// Example: "300100000001234-567 (-9999999)".
var gackPattern = regexp.MustCompile(`\d{9,}-\d{3,} \(-?\d{7,}\)`)

// maxCauseDepth caps cause-chain traversal. Unwrap cycles are malformed but
// constructible, so the walk terminates after this many errors instead of
// spinning.
const maxCauseDepth = 32

// StackTracer is implemented by errors that captured a stack trace.
type StackTracer interface {
	StackTrace() string
}

// Namer is implemented by errors that carry a category name
// (e.g., "TypeError").
type Namer interface {
	ErrorName() string
}

// IsGack reports whether err, or any error in its cause chain, carries the
// gack incident signature in its message or stack trace.
func IsGack(err error) bool {
	return walkChain(err, func(e error) bool {
		if gackPattern.MatchString(e.Error()) {
			return true
		}
		if st, ok := e.(StackTracer); ok && gackPattern.MatchString(st.StackTrace()) {
			return true
		}
		return false
	})
}

// IsTypeError reports whether err, or any error in its cause chain, is a
// type error: a runtime type-assertion failure, an error named "TypeError",
// or an error whose message or stack mentions "TypeError".
func IsTypeError(err error) bool {
	return walkChain(err, func(e error) bool {
		if _, ok := e.(*runtime.TypeAssertionError); ok {
			return true
		}
		if n, ok := e.(Namer); ok && n.ErrorName() == "TypeError" {
			return true
		}
		if strings.Contains(e.Error(), "TypeError") {
			return true
		}
		if st, ok := e.(StackTracer); ok && strings.Contains(st.StackTrace(), "TypeError") {
			return true
		}
		return false
	})
}

// walkChain visits err and every error reachable through Unwrap, depth-first,
// and reports whether match returned true for any of them. Both single-cause
// (Unwrap() error) and joined (Unwrap() []error) chains are followed. At most
// maxCauseDepth errors are visited.
func walkChain(err error, match func(error) bool) bool {
	budget := maxCauseDepth
	return walk(err, match, &budget)
}

func walk(err error, match func(error) bool, budget *int) bool {
	if err == nil || *budget <= 0 {
		return false
	}
	*budget--
	if match(err) {
		return true
	}
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return walk(u.Unwrap(), match, budget)
	case interface{ Unwrap() []error }:
		for _, cause := range u.Unwrap() {
			if walk(cause, match, budget) {
				return true
			}
		}
	}
	return false
}
