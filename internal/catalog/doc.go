// Package catalog resolves localized message templates for plugkit.
//
// Messages live in JSONC bundles under locales/ (one file per language,
// embedded into the binary). JSONC is used so bundle files can carry
// translator comments; github.com/tidwall/jsonc strips them before the
// standard encoding/json decoder runs.
//
// Lookup is keyed by bundle name + key (e.g., bundle "errors", key
// "InvalidDuration"). Templates are fmt.Sprintf format strings. Missing
// keys fall back from the active locale to English, then to a literal
// "bundle.key" placeholder so a broken bundle never panics a plugin.
package catalog
