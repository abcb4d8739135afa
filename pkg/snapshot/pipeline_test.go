package snapshot_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"promptsnap/pkg/snapshot"
)

func newTestPipeline(t *testing.T, cfg snapshot.Config, files map[string]string) (*snapshot.Pipeline, *memSource, *memClipboard, *memNotifier) {
	t.Helper()
	src := &memSource{files: files}
	cb := &memClipboard{}
	n := &memNotifier{}
	return snapshot.NewPipeline(cfg, src, cb, n, zaptest.NewLogger(t)), src, cb, n
}

func TestRunAnchoredScenario(t *testing.T) {
	files := map[string]string{
		"/home/u/openfaas-function/src/a.go": "package a\n",
		"/home/u/openfaas-function/.env":     "SECRET=1\n",
	}
	p, src, cb, n := newTestPipeline(t, snapshot.DefaultConfig(), files)

	err := p.Run(snapshot.FileHandle{Path: "/home/u/openfaas-function/src/a.go"},
		snapshot.Handles("/home/u/openfaas-function/src/a.go", "/home/u/openfaas-function/.env"))
	require.NoError(t, err)

	want := "\n<details>\n\n<file path=\"openfaas-function/src/a.go\">\n \n```\npackage a\n\n```\n</file>\n\n</details>\n"
	assert.Equal(t, want, cb.text)
	assert.Equal(t, 1, strings.Count(cb.text, "<file path="))
	assert.NotContains(t, cb.text, "SECRET")
	assert.Equal(t, []string{"/home/u/openfaas-function/src/a.go"}, src.reads)
	assert.Equal(t, []string{snapshot.SuccessMessage}, n.infos)
	assert.Empty(t, n.errors)
}

func TestRunEmptySelectionSucceeds(t *testing.T) {
	p, _, cb, n := newTestPipeline(t, snapshot.DefaultConfig(), nil)

	require.NoError(t, p.Run(snapshot.FileHandle{}, nil))

	assert.Equal(t, "\n<details>\n\n\n</details>\n", cb.text)
	assert.Equal(t, 1, cb.writes)
	assert.Equal(t, []string{snapshot.SuccessMessage}, n.infos)
}

func TestBuildPreservesSelectionOrder(t *testing.T) {
	files := map[string]string{
		"/w/openfaas-function/z.go": "z",
		"/w/openfaas-function/a.go": "a",
		"/w/openfaas-function/m.go": "m",
	}
	p, src, _, _ := newTestPipeline(t, snapshot.DefaultConfig(), files)
	selection := snapshot.Handles("/w/openfaas-function/z.go", "/w/openfaas-function/a.go", "/w/openfaas-function/m.go", "/w/openfaas-function/a.go")

	doc, err := p.Build(selection)
	require.NoError(t, err)

	iz := strings.Index(doc, `"openfaas-function/z.go"`)
	ia := strings.Index(doc, `"openfaas-function/a.go"`)
	im := strings.Index(doc, `"openfaas-function/m.go"`)
	assert.True(t, iz < ia && ia < im, "records out of order:\n%s", doc)
	assert.Equal(t, 2, strings.Count(doc, `"openfaas-function/a.go"`))
	assert.Equal(t, []string{
		"/w/openfaas-function/z.go",
		"/w/openfaas-function/a.go",
		"/w/openfaas-function/m.go",
		"/w/openfaas-function/a.go",
	}, src.reads)
}

func TestBuildIsIdempotent(t *testing.T) {
	files := map[string]string{
		"/w/openfaas-function/a.go":  "package a\n",
		"/w/openfaas-function/b.md":  "# b\n",
		"/w/openfaas-function/c.txt": "c",
	}
	selection := snapshot.Handles("/w/openfaas-function/b.md", "/w/openfaas-function/a.go", "/w/openfaas-function/c.txt")

	for _, style := range []snapshot.Style{snapshot.StyleAnchored, snapshot.StyleTagged} {
		t.Run(string(style), func(t *testing.T) {
			cfg := snapshot.DefaultConfig()
			cfg.Style = style
			p, _, _, _ := newTestPipeline(t, cfg, files)

			first, err := p.Build(selection)
			require.NoError(t, err)
			second, err := p.Build(selection)
			require.NoError(t, err)

			assert.Equal(t, first, second)
			assert.Equal(t, snapshot.Digest(first), snapshot.Digest(second))
		})
	}
}

func TestBuildTaggedStyle(t *testing.T) {
	cfg := snapshot.DefaultConfig()
	cfg.Style = snapshot.StyleTagged
	files := map[string]string{
		"notes.md": "hi",
		"Makefile": "all:",
	}
	p, _, _, _ := newTestPipeline(t, cfg, files)

	doc, err := p.Build(snapshot.Handles("notes.md", "Makefile"))
	require.NoError(t, err)

	want := "<details>\n \n" +
		"<file path=\"notes.md\">\n \n```md\n\nhi\n```\n</file>\n" +
		"<file path=\"Makefile\">\n \n```\n\nall:\n```\n</file>\n" +
		" \n</details>"
	assert.Equal(t, want, doc)
}

func TestBuildIdentifierRoundTrip(t *testing.T) {
	cfg := snapshot.DefaultConfig()
	paths := []string{"/a/openfaas-function/x/y.go", "/elsewhere/z.go"}
	files := map[string]string{paths[0]: "1", paths[1]: "2"}
	p, _, _, _ := newTestPipeline(t, cfg, files)

	doc, err := p.Build(snapshot.Handles(paths...))
	require.NoError(t, err)

	for _, path := range paths {
		assert.Contains(t, doc, `<file path="`+cfg.NormalizePath(path)+`">`)
	}
}

func TestRunReadFailureAbortsWithoutClipboardWrite(t *testing.T) {
	files := map[string]string{"/w/openfaas-function/a.go": "a"}
	p, src, cb, n := newTestPipeline(t, snapshot.DefaultConfig(), files)

	err := p.Run(snapshot.FileHandle{}, snapshot.Handles("/w/openfaas-function/a.go", "/w/openfaas-function/gone.go", "/w/openfaas-function/a.go"))
	require.Error(t, err)

	var readErr *snapshot.ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "/w/openfaas-function/gone.go", readErr.Path)
	assert.Equal(t, 0, cb.writes)
	assert.Len(t, src.reads, 2, "reading must stop at the first failure")
	assert.Empty(t, n.infos)
	require.Len(t, n.errors, 1)
	assert.Contains(t, n.errors[0], "gone.go")
}

func TestRunMissingAnchor(t *testing.T) {
	cfg := snapshot.DefaultConfig()
	cfg.Anchor = ""
	p, src, cb, n := newTestPipeline(t, cfg, map[string]string{"a.go": "a"})

	err := p.Run(snapshot.FileHandle{}, snapshot.Handles("a.go"))

	require.ErrorIs(t, err, snapshot.ErrMissingAnchor)
	assert.Empty(t, src.reads)
	assert.Equal(t, 0, cb.writes)
	assert.Equal(t, []string{"Repository name is required"}, n.errors)
}

func TestRunClipboardFailure(t *testing.T) {
	p, _, cb, n := newTestPipeline(t, snapshot.DefaultConfig(), map[string]string{"/w/openfaas-function/a.go": "a"})
	cb.err = errClipboardBusy

	err := p.Run(snapshot.FileHandle{}, snapshot.Handles("/w/openfaas-function/a.go"))

	require.True(t, errors.Is(err, errClipboardBusy))
	assert.Equal(t, 1, cb.writes, "clipboard writes are not retried")
	assert.Equal(t, []string{"clipboard busy"}, n.errors)
	assert.Empty(t, n.infos)
}

func TestNewPipelineNilLogger(t *testing.T) {
	p := snapshot.NewPipeline(snapshot.DefaultConfig(), &memSource{}, &memClipboard{}, &memNotifier{}, nil)

	_, err := p.Build(nil)
	assert.NoError(t, err)
}

func TestRunWithoutClipboardOrNotifier(t *testing.T) {
	src := &memSource{files: map[string]string{"/w/openfaas-function/a.go": "a"}}
	p := snapshot.NewPipeline(snapshot.DefaultConfig(), src, nil, nil, zaptest.NewLogger(t))

	doc, err := p.Build(snapshot.Handles("/w/openfaas-function/a.go"))
	require.NoError(t, err)
	assert.Contains(t, doc, `<file path="openfaas-function/a.go">`)

	err = p.Run(snapshot.FileHandle{}, snapshot.Handles("/w/openfaas-function/a.go"))
	assert.ErrorIs(t, err, snapshot.ErrNoClipboard)
}
