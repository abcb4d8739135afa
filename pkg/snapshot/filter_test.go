package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"promptsnap/pkg/snapshot"
)

func TestExcluded(t *testing.T) {
	cfg := snapshot.DefaultConfig()

	tests := []struct {
		path string
		want bool
	}{
		{"/repo/.env", true},
		{"/repo/config/prod.env", true},
		{"/repo/yarn.lock", true},
		{"/repo/Cargo.lock", true},
		{"/repo/LICENSE", true},
		{"/repo/THIRD_PARTY_LICENSE", true},
		{"/repo/LICENSE.md", false},
		{"/repo/license", false},
		{"/repo/.ENV", false},
		{"/repo/.env.example", false},
		{"/repo/main.go", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.Excluded(tt.path))
		})
	}
}

func TestFilterSelectionKeepsOrderAndDuplicates(t *testing.T) {
	cfg := snapshot.DefaultConfig()
	selection := snapshot.Handles("c.go", ".env", "a.go", "go.lock", "c.go", "LICENSE", "b.go")

	got := cfg.FilterSelection(selection)

	assert.Equal(t, snapshot.Handles("c.go", "a.go", "c.go", "b.go"), got)
}

func TestFilterSelectionEmpty(t *testing.T) {
	cfg := snapshot.DefaultConfig()

	assert.Empty(t, cfg.FilterSelection(nil))
	assert.Empty(t, cfg.FilterSelection(snapshot.Handles(".env", "LICENSE")))
}

func TestExcludedIgnoresEmptySuffix(t *testing.T) {
	cfg := snapshot.Config{ExcludeSuffixes: []string{""}}

	assert.False(t, cfg.Excluded("main.go"))
}
