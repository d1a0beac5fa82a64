package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Translations maps a locale code to a translated value.
type Translations map[string]string

// Clone returns an independent copy. A nil map clones to an empty map so
// callers never alias or mutate shared state.
func (t Translations) Clone() Translations {
	out := make(Translations, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Merge overlays partial onto t key by key and returns the result.
// Keys absent from partial keep their existing value, so a single-locale
// edit never clobbers the other locales.
func (t Translations) Merge(partial Translations) Translations {
	out := t.Clone()
	for k, v := range partial {
		out[k] = v
	}
	return out
}

// EnsureKeys returns a copy of t with every locale present, seeding
// missing ones with the empty string.
func (t Translations) EnsureKeys(locales []string) Translations {
	out := t.Clone()
	for _, l := range locales {
		if _, ok := out[l]; !ok {
			out[l] = ""
		}
	}
	return out
}

// NewID generates a fresh opaque entity id. Ids are stable primary keys
// once assigned; nothing downstream parses them.
func NewID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// NormalizeLocales lower-cases and deduplicates a locale list, keeping
// first-seen order.
func NormalizeLocales(locales []string) []string {
	out := make([]string, 0, len(locales))
	seen := make(map[string]bool, len(locales))
	for _, l := range locales {
		l = strings.ToLower(strings.TrimSpace(l))
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
