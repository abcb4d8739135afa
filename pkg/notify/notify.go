// Package notify shows pipeline outcomes to the user.
package notify

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Console prints notifications as plain lines. The logger only records them
// at debug level; the failure itself is logged where it happened.
type Console struct {
	out    io.Writer
	logger *zap.Logger
}

// NewConsole returns a notifier writing to out, typically stderr.
func NewConsole(out io.Writer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{out: out, logger: logger}
}

// ShowInfo prints an informational message.
func (c *Console) ShowInfo(message string) {
	c.logger.Debug("Info notification", zap.String("message", message))
	fmt.Fprintln(c.out, message)
}

// ShowError prints an error message.
func (c *Console) ShowError(message string) {
	c.logger.Debug("Error notification", zap.String("message", message))
	fmt.Fprintf(c.out, "error: %s\n", message)
}
