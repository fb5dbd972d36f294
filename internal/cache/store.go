package cache

import "strings"

// keyDelimiter joins the seeder name and the description slug in a cache key.
const keyDelimiter = ":"

// Store is the contract between the step sub-workflow and a cache backend.
// A Store must be safe for use from multiple goroutines.
type Store interface {
	// Get returns the value stored under key, or false when the key is
	// absent. A backend that cannot read an entry treats it as a miss.
	Get(key string) (any, bool)

	// Set records value under key, replacing any previous value.
	Set(key string, value any)
}

// Key builds the canonical cache key for a step: the owning seeder's name
// joined with a slug of the step's human description.
func Key(seederName, description string) string {
	return seederName + keyDelimiter + Slug(description)
}

// Slug lowercases s and collapses every run of non-alphanumeric characters
// into a single hyphen, trimming hyphens from both ends.
func Slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
