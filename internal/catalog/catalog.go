package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/tidwall/jsonc"
)

// fallbackLocale is consulted when the active locale has no entry for a key.
const fallbackLocale = "en"

//go:embed locales/*.jsonc
var localeFS embed.FS

var (
	mu     sync.RWMutex
	locale = fallbackLocale

	loadOnce sync.Once
	// bundles maps locale -> "bundle.key" -> template.
	bundles map[string]map[string]string
)

// SetLocale selects the active language. Unknown locales are accepted;
// lookups simply fall back to English until a matching bundle exists.
func SetLocale(lang string) {
	mu.Lock()
	defer mu.Unlock()
	locale = strings.ToLower(strings.TrimSpace(lang))
}

// Locale returns the active language.
func Locale() string {
	mu.RLock()
	defer mu.RUnlock()
	return locale
}

// Message resolves the template for bundle.key in the active locale and
// renders it with args via fmt.Sprintf. A key missing from every bundle
// renders as "bundle.key" so callers always get a usable string.
func Message(bundle, key string, args ...any) string {
	loadOnce.Do(loadBundles)

	full := bundle + "." + key
	mu.RLock()
	lang := locale
	mu.RUnlock()

	template, ok := bundles[lang][full]
	if !ok {
		template, ok = bundles[fallbackLocale][full]
	}
	if !ok {
		return full
	}
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}

// loadBundles parses every embedded locale file once. Bundle files are
// JSONC; comments are stripped before decoding. A malformed bundle is
// skipped rather than failing the process — the English fallback and the
// placeholder path keep Message total.
func loadBundles() {
	bundles = make(map[string]map[string]string)
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".jsonc") {
			continue
		}
		raw, err := localeFS.ReadFile(path.Join("locales", name))
		if err != nil {
			continue
		}
		messages := make(map[string]string)
		if err := json.Unmarshal(jsonc.ToJSON(raw), &messages); err != nil {
			continue
		}
		lang := strings.TrimSuffix(name, ".jsonc")
		bundles[lang] = messages
	}
}
