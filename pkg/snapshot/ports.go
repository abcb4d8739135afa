package snapshot

import "errors"

// ErrNoClipboard is returned by Run on a pipeline built without a clipboard target.
var ErrNoClipboard = errors.New("no clipboard target configured")

// ContentSource reads the raw bytes of a selected file.
type ContentSource interface {
	ReadFile(handle FileHandle) ([]byte, error)
}

// ClipboardTarget receives the finished document.
type ClipboardTarget interface {
	WriteText(text string) error
}

// Notifier is the user-visible feedback channel of the host.
type Notifier interface {
	ShowInfo(message string)
	ShowError(message string)
}

type noClipboard struct{}

func (noClipboard) WriteText(string) error { return ErrNoClipboard }

type discardNotifier struct{}

func (discardNotifier) ShowInfo(string)  {}
func (discardNotifier) ShowError(string) {}
