// File: pkg/snapshot/config.go
package snapshot

import (
	"fmt"
	"strings"
)

// Style selects how identifiers and fences are rendered.
type Style string

const (
	// StyleAnchored rewrites paths relative to the anchor and emits bare fences.
	StyleAnchored Style = "anchored"
	// StyleTagged keeps host paths and tags each fence with the file extension.
	StyleTagged Style = "tagged"
)

// DefaultAnchor is the repository name used to pivot path normalization.
const DefaultAnchor = "openfaas-function"

// DefaultStyle is the style used when none is configured.
const DefaultStyle = StyleAnchored

// DefaultExcludeSuffixes lists the path suffixes that are never snapshotted:
// secrets, lockfiles and license files.
var DefaultExcludeSuffixes = []string{".env", ".lock", "LICENSE"}

// Config holds the fixed knobs of the snapshot pipeline.
type Config struct {
	ExcludeSuffixes []string // Paths ending in any of these are dropped from the selection.
	Anchor          string   // Repository name that path normalization pivots on (anchored style).
	Style           Style    // Output style.
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	suffixes := make([]string, len(DefaultExcludeSuffixes))
	copy(suffixes, DefaultExcludeSuffixes)
	return Config{
		ExcludeSuffixes: suffixes,
		Anchor:          DefaultAnchor,
		Style:           DefaultStyle,
	}
}

// ParseStyle converts a user supplied style name into a Style.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleAnchored:
		return StyleAnchored, nil
	case StyleTagged:
		return StyleTagged, nil
	default:
		return "", fmt.Errorf("unknown style %q (want %q or %q)", s, StyleAnchored, StyleTagged)
	}
}

// Validate reports configuration that cannot produce a snapshot.
func (c Config) Validate() error {
	if c.Style != StyleAnchored && c.Style != StyleTagged {
		return fmt.Errorf("unknown style %q", c.Style)
	}
	if c.Style == StyleAnchored && c.Anchor == "" {
		return ErrMissingAnchor
	}
	return nil
}
