// File: pkg/clipboard/file.go
package clipboard

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// File writes documents to a file on disk instead of the clipboard.
type File struct {
	path   string
	logger *zap.Logger
}

// NewFile returns a target writing to path.
func NewFile(path string, logger *zap.Logger) *File {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &File{path: path, logger: logger}
}

// WriteText replaces the content of the output file with text,
// creating missing parent directories.
func (f *File) WriteText(text string) error {
	if err := ensureDirectory(filepath.Dir(f.path), f.logger); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outFile, err := os.Create(f.path)
	if err != nil {
		f.logger.Error("Failed to create output file", zap.String("file", f.path), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			f.logger.Error("Failed to close output file", zap.String("file", f.path), zap.Error(err))
		}
	}()

	writer := bufio.NewWriter(outFile)
	if _, err := writer.WriteString(text); err != nil {
		f.logger.Error("Failed to write document", zap.String("file", f.path), zap.Error(err))
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := writer.Flush(); err != nil {
		f.logger.Error("Failed to flush output file", zap.String("file", f.path), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}

	f.logger.Debug("Wrote document to file", zap.String("file", f.path), zap.Int("bytes", len(text)))
	return nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}
