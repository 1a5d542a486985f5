// Package exiterr classifies errors and resolves process exit codes for
// plugkit-based CLI plugins.
//
// Two special error categories are recognized by scanning an error's
// message, stack trace, and wrapped-cause chain:
//
//   - "gack" internal-server failures, identified by a numeric incident
//     signature in the message or stack (exit code 20)
//   - type errors, identified by runtime type-assertion failures or a
//     "TypeError" marker in the name, message, or stack (exit code 10)
//
// Resolve turns any error into a final exit code through a fixed
// precedence ladder: gack, type error, framework exit directive,
// explicit exit code, symbolic error code, caller fallback.
//
// NewReport normalizes any error into a fixed-shape Report record for
// serialization. Fields without a source value are omitted from the
// encoded output rather than emitted as null.
//
// Foreign error types participate through small optional interfaces
// (ExitCoder, FrameworkExiter, Coder, StackTracer, Namer) rather than
// field probing. All classification functions are pure, never panic,
// and tolerate nil and partially-populated errors.
package exiterr
