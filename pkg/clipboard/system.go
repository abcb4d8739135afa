package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// ErrNoClipboardTool is returned when none of the platform clipboard tools is installed.
var ErrNoClipboardTool = errors.New("no clipboard tool found (install wl-copy, xclip or xsel)")

// Tool is a command that copies its stdin to the clipboard.
type Tool struct {
	Name string
	Args []string
}

func (t Tool) String() string {
	return strings.Join(append([]string{t.Name}, t.Args...), " ")
}

// Tools returns the clipboard commands to try on goos, most preferred first.
func Tools(goos string, wayland bool) []Tool {
	switch goos {
	case "darwin":
		return []Tool{{Name: "pbcopy"}}
	case "windows":
		return []Tool{{Name: "clip"}}
	}
	var tools []Tool
	if wayland {
		tools = append(tools, Tool{Name: "wl-copy"})
	}
	return append(tools,
		Tool{Name: "xclip", Args: []string{"-selection", "clipboard"}},
		Tool{Name: "xsel", Args: []string{"--clipboard", "--input"}},
	)
}

// System copies documents to the OS clipboard by piping them into a platform tool.
type System struct {
	goos     string
	getenv   func(string) string
	lookPath func(string) (string, error)
	logger   *zap.Logger
}

// NewSystem returns a target for the running platform.
func NewSystem(logger *zap.Logger) *System {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &System{
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		logger:   logger,
	}
}

// Resolve returns the first installed clipboard tool and its full path.
func (s *System) Resolve() (Tool, string, error) {
	for _, tool := range Tools(s.goos, s.getenv("WAYLAND_DISPLAY") != "") {
		path, err := s.lookPath(tool.Name)
		if err != nil {
			s.logger.Debug("Clipboard tool not available", zap.String("tool", tool.Name))
			continue
		}
		return tool, path, nil
	}
	return Tool{}, "", ErrNoClipboardTool
}

// WriteText places text on the clipboard.
func (s *System) WriteText(text string) error {
	tool, path, err := s.Resolve()
	if err != nil {
		return err
	}

	var stderr bytes.Buffer
	cmd := exec.Command(path, tool.Args...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		s.logger.Error("Clipboard tool failed",
			zap.String("tool", tool.String()),
			zap.String("stderr", strings.TrimSpace(stderr.String())),
			zap.Error(err))
		return fmt.Errorf("%s: %w", tool.Name, err)
	}

	s.logger.Debug("Copied document to clipboard", zap.String("tool", tool.String()), zap.Int("bytes", len(text)))
	return nil
}
