// Package clipboard delivers snapshot documents to the system clipboard or,
// when no clipboard is wanted, to a file or stream.
package clipboard

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"promptsnap/pkg/snapshot"
)

// Mode names a clipboard target.
type Mode string

const (
	ModeAuto   Mode = "auto"   // File when an output path is set, system clipboard otherwise.
	ModeSystem Mode = "system" // Platform clipboard tool.
	ModeFile   Mode = "file"   // Output file.
	ModeStdout Mode = "stdout" // Standard output.
)

// ParseMode converts a user supplied mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAuto, ModeSystem, ModeFile, ModeStdout:
		return m, nil
	default:
		return "", fmt.Errorf("unknown clipboard mode %q (want auto, system, file or stdout)", s)
	}
}

// New returns the target for mode. output is required by ModeFile.
func New(mode Mode, output string, stdout io.Writer, logger *zap.Logger) (snapshot.ClipboardTarget, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mode == ModeAuto {
		if output != "" {
			mode = ModeFile
		} else {
			mode = ModeSystem
		}
	}

	switch mode {
	case ModeSystem:
		return NewSystem(logger), nil
	case ModeFile:
		if output == "" {
			return nil, fmt.Errorf("clipboard mode %q requires an output path", mode)
		}
		return NewFile(output, logger), nil
	case ModeStdout:
		return NewWriter(stdout), nil
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q", mode)
	}
}

// Writer writes documents to a stream.
type Writer struct {
	w io.Writer
}

// NewWriter returns a target that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteText writes text unchanged.
func (t *Writer) WriteText(text string) error {
	if _, err := io.WriteString(t.w, text); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
