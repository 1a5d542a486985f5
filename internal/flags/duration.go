package flags

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/mmr-tortoise/plugkit/internal/catalog"
)

// Config describes a duration flag: the unit its integer value counts in,
// an optional default, and optional inclusive bounds. Config is supplied
// at flag registration and never mutated afterwards.
//
// A Default, Min, or Max of 0 means "unset". In particular a bound of 0 is
// skipped by Validate, so zero bounds cannot be enforced. That behavior is
// deliberate and pinned by tests; see the package documentation.
type Config struct {
	Unit    Unit
	Default int
	Min     int
	Max     int
}

// InvalidDurationError reports input that does not parse to an integer.
type InvalidDurationError struct {
	// Raw is the rejected input.
	Raw string
}

// Error returns the localized errors.InvalidDuration message.
func (e *InvalidDurationError) Error() string {
	return catalog.Message("errors", "InvalidDuration")
}

// BoundsError reports a parsed value outside the configured bounds.
type BoundsError struct {
	// Min and Max are the configured bounds, as passed to the message
	// template. An unset bound is reported as 0.
	Min int
	Max int
}

// Error returns the localized errors.DurationBounds message.
func (e *BoundsError) Error() string {
	return catalog.Message("errors", "DurationBounds", e.Min, e.Max)
}

// Validate parses raw as an integer count of cfg.Unit and checks it against
// the configured bounds.
//
// Parsing accepts a leading base-10 integer and ignores any trailing
// garbage ("5abc" parses as 5); input with no leading integer fails with
// InvalidDurationError. A parsed value below a nonzero Min or above a
// nonzero Max fails with BoundsError. Bounds of 0 are skipped (see Config).
func Validate(raw string, cfg Config) (time.Duration, error) {
	n, ok := parseLeadingInt(raw)
	if !ok {
		return 0, &InvalidDurationError{Raw: raw}
	}
	if cfg.Min != 0 && n < cfg.Min {
		return 0, &BoundsError{Min: cfg.Min, Max: cfg.Max}
	}
	if cfg.Max != 0 && n > cfg.Max {
		return 0, &BoundsError{Min: cfg.Min, Max: cfg.Max}
	}
	return cfg.Unit.Duration(n), nil
}

// DefaultFor returns the configured default as a duration. The second
// return value is false when no default is configured (Default == 0).
func DefaultFor(cfg Config) (time.Duration, bool) {
	if cfg.Default == 0 {
		return 0, false
	}
	return cfg.Unit.Duration(cfg.Default), true
}

// parseLeadingInt extracts an optionally-signed base-10 integer prefix from
// s, after trimming surrounding whitespace. Trailing non-digit characters
// are ignored. Returns false when s has no integer prefix or the prefix
// overflows int.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Duration is a pflag.Value for duration flags. The zero value is not
// usable; create one with NewDuration or register directly with Var.
type Duration struct {
	cfg Config
	d   time.Duration
	set bool
}

// NewDuration creates a Duration flag value for cfg. Until the flag is set
// on the command line, Get returns the configured default (if any).
func NewDuration(cfg Config) *Duration {
	return &Duration{cfg: cfg}
}

// Set parses and validates the command-line value. It satisfies
// pflag.Value; validation errors propagate to the flag parser unchanged.
func (v *Duration) Set(raw string) error {
	d, err := Validate(raw, v.cfg)
	if err != nil {
		return err
	}
	v.d = d
	v.set = true
	return nil
}

// Get returns the validated duration, or the configured default when the
// flag was never set. The second return value is false when neither is
// available.
func (v *Duration) Get() (time.Duration, bool) {
	if v.set {
		return v.d, true
	}
	return DefaultFor(v.cfg)
}

// String renders the current value for pflag's default-value display.
func (v *Duration) String() string {
	d, ok := v.Get()
	if !ok {
		return ""
	}
	return d.String()
}

// Type identifies the flag type in help output. It satisfies pflag.Value.
func (v *Duration) Type() string {
	return "duration"
}

// Var registers a duration flag on fs and returns its value for later
// inspection with Get.
func Var(fs *pflag.FlagSet, name, usage string, cfg Config) *Duration {
	v := NewDuration(cfg)
	fs.Var(v, name, usage)
	return v
}
