package snapshot

import "strings"

// Excluded reports whether path ends with one of the configured suffixes.
// Matching is case-sensitive and never looks at file content.
func (c Config) Excluded(path string) bool {
	for _, suffix := range c.ExcludeSuffixes {
		if suffix != "" && strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// FilterSelection returns the handles that are not excluded, in their original order.
// Duplicates are kept.
func (c Config) FilterSelection(selection []FileHandle) []FileHandle {
	kept := make([]FileHandle, 0, len(selection))
	for _, h := range selection {
		if c.Excluded(h.Path) {
			continue
		}
		kept = append(kept, h)
	}
	return kept
}
