package snapshot

import (
	"path/filepath"
	"strings"
)

// NormalizePath returns the identifier written for rawPath.
//
// In the anchored style everything before the first "<anchor>/" is stripped,
// so "/home/u/repo/src/a.go" becomes "repo/src/a.go". A path that does not
// contain the anchor is returned unchanged. The tagged style always returns
// the raw path.
func (c Config) NormalizePath(rawPath string) string {
	if c.Style != StyleAnchored || c.Anchor == "" {
		return rawPath
	}
	slashed := filepath.ToSlash(rawPath)
	idx := strings.Index(slashed, c.Anchor+"/")
	if idx < 0 {
		return rawPath
	}
	return slashed[idx:]
}

func (c Config) hasAnchor(rawPath string) bool {
	return c.Anchor != "" && strings.Contains(filepath.ToSlash(rawPath), c.Anchor+"/")
}

// LanguageTag returns the text after the last '.' in path, or "" when path
// has no dot. The result is not validated or case folded, so a dotted
// directory above an extensionless file yields e.g. "b/Makefile".
func LanguageTag(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return ""
	}
	return path[i+1:]
}
