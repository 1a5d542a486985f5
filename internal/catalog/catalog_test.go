package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMessage_English verifies lookup and argument formatting against the
// shipped English bundle.
func TestMessage_English(t *testing.T) {
	t.Cleanup(func() { SetLocale("en") })
	SetLocale("en")

	assert.Equal(t, "The value must be an integer.", Message("errors", "InvalidDuration"))
	assert.Equal(t, "The value must be between 10 and 60 (inclusive).", Message("errors", "DurationBounds", 10, 60))
}

// TestMessage_Japanese verifies the active locale switches the bundle.
func TestMessage_Japanese(t *testing.T) {
	t.Cleanup(func() { SetLocale("en") })
	SetLocale("ja")

	assert.Equal(t, "ja", Locale())
	assert.Equal(t, "値は整数でなければなりません。", Message("errors", "InvalidDuration"))
	assert.Equal(t, "値は 10 から 60 の範囲内でなければなりません。", Message("errors", "DurationBounds", 10, 60))
}

// TestMessage_FallbackToEnglish verifies an unknown locale still resolves
// through the English bundle.
func TestMessage_FallbackToEnglish(t *testing.T) {
	t.Cleanup(func() { SetLocale("en") })
	SetLocale("fr")

	assert.Equal(t, "The value must be an integer.", Message("errors", "InvalidDuration"))
}

// TestMessage_MissingKey verifies the placeholder path: a key absent from
// every bundle renders as "bundle.key" instead of failing.
func TestMessage_MissingKey(t *testing.T) {
	t.Cleanup(func() { SetLocale("en") })
	SetLocale("en")

	assert.Equal(t, "errors.NoSuchKey", Message("errors", "NoSuchKey"))
	assert.Equal(t, "other.Missing", Message("other", "Missing", 1, 2))
}
