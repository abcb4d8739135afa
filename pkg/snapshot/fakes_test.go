package snapshot_test

import (
	"errors"
	"fmt"

	"promptsnap/pkg/snapshot"
)

// memSource serves file content from a map and records read order.
type memSource struct {
	files map[string]string
	reads []string
}

func (m *memSource) ReadFile(h snapshot.FileHandle) ([]byte, error) {
	m.reads = append(m.reads, h.Path)
	content, ok := m.files[h.Path]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file or directory", h.Path)
	}
	return []byte(content), nil
}

type memClipboard struct {
	text   string
	writes int
	err    error
}

func (m *memClipboard) WriteText(text string) error {
	m.writes++
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

type memNotifier struct {
	infos  []string
	errors []string
}

func (m *memNotifier) ShowInfo(message string)  { m.infos = append(m.infos, message) }
func (m *memNotifier) ShowError(message string) { m.errors = append(m.errors, message) }

var errClipboardBusy = errors.New("clipboard busy")
