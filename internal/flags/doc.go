// Package flags provides the duration flag type for plugkit-based CLIs.
//
// A duration flag accepts a whole number of time units from the user
// (e.g., --wait 30 with a unit of seconds) and validates it against an
// optional minimum and maximum before producing a time.Duration. The
// Duration type implements pflag.Value, so it plugs directly into cobra
// and pflag flag sets.
//
// Validation errors are localized through the internal/catalog package
// and propagate uncaught to the flag-parsing caller, which turns them
// into user-visible CLI failures.
//
// Known quirk, preserved on purpose: a configured Min or Max of 0 is
// treated as "unset" and skipped by the bounds check, so zero bounds are
// unenforceable. See Config.
package flags
