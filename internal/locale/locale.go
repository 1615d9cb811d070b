// Package locale resolves built-in profile descriptor keys to
// human-readable display text. The synchronization core never depends on
// it; only presentation layers do.
package locale

import "github.com/rkuiper/tunesync/internal/profile"

// Entry is the localized display text for one descriptor key.
type Entry struct {
	Name        string
	Description string
}

// Translator looks up display text for a descriptor key.
// An unknown key yields ok == false, never a placeholder.
type Translator interface {
	Lookup(key string) (Entry, bool)
}

// Catalog is a static table-backed Translator.
type Catalog map[string]Entry

// Lookup implements Translator.
func (c Catalog) Lookup(key string) (Entry, bool) {
	e, ok := c[key]
	return e, ok
}

// English returns the default English catalog for the built-in profiles.
func English() Catalog {
	return Catalog{
		profile.DescriptorDefault: {
			Name:        "Default",
			Description: "Balanced performance with stock fan behavior.",
		},
		profile.DescriptorCoolAndBreezy: {
			Name:        "Cool and breezy",
			Description: "Reduced clock ceiling and quieter fans for light work.",
		},
		profile.DescriptorPowersaveExtreme: {
			Name:        "Powersave extreme",
			Description: "Minimum clocks, limited cores, and near-silent fans.",
		},
	}
}

// DisplayName returns the localized name for a profile, falling back to the
// raw profile name when the translator has no entry (custom profiles never
// have one).
func DisplayName(tr Translator, name string) string {
	if tr != nil {
		if e, ok := tr.Lookup(name); ok {
			return e.Name
		}
	}
	return name
}
