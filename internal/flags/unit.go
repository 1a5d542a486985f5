package flags

import (
	"fmt"
	"strings"
	"time"
)

// Unit is the time unit a duration flag counts in.
type Unit string

const (
	Nanoseconds  Unit = "nanoseconds"
	Microseconds Unit = "microseconds"
	Milliseconds Unit = "milliseconds"
	Seconds      Unit = "seconds"
	Minutes      Unit = "minutes"
	Hours        Unit = "hours"
	Days         Unit = "days"
	Weeks        Unit = "weeks"
)

// unitDurations maps each unit to its length. Days and weeks are fixed
// 24-hour multiples; calendar awareness is out of scope for flag values.
var unitDurations = map[Unit]time.Duration{
	Nanoseconds:  time.Nanosecond,
	Microseconds: time.Microsecond,
	Milliseconds: time.Millisecond,
	Seconds:      time.Second,
	Minutes:      time.Minute,
	Hours:        time.Hour,
	Days:         24 * time.Hour,
	Weeks:        7 * 24 * time.Hour,
}

// String returns the lowercase unit identifier.
func (u Unit) String() string {
	return string(u)
}

// IsValid checks whether the Unit value is one of the defined units.
func (u Unit) IsValid() bool {
	_, ok := unitDurations[u]
	return ok
}

// Duration converts a count of this unit into a time.Duration.
// Invalid units yield zero.
func (u Unit) Duration(n int) time.Duration {
	return time.Duration(n) * unitDurations[u]
}

// ParseUnit converts a string to a Unit. Matching is case-insensitive.
// Returns an error if the string does not name a defined unit.
func ParseUnit(s string) (Unit, error) {
	unit := Unit(strings.ToLower(strings.TrimSpace(s)))
	if !unit.IsValid() {
		return "", fmt.Errorf("invalid time unit %q (valid: nanoseconds, microseconds, milliseconds, seconds, minutes, hours, days, weeks)", s)
	}
	return unit, nil
}
