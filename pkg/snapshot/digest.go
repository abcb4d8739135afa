package snapshot

import (
	"encoding/hex"

	"github.com/zeebo/xxh3"
)

// Digest returns the hex encoded 128-bit xxh3 hash of a document.
// Two runs over unchanged files yield the same digest.
func Digest(document string) string {
	h := xxh3.HashString128(document).Bytes()
	return hex.EncodeToString(h[:])
}
