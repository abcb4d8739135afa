// Package source reads selected files from the local filesystem.
package source

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"promptsnap/pkg/snapshot"
)

// OS reads file content straight from disk.
type OS struct {
	logger *zap.Logger
}

// NewOS returns a filesystem backed content source.
func NewOS(logger *zap.Logger) *OS {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OS{logger: logger}
}

// ReadFile returns the full content of a regular file.
// Directories, devices and sockets are rejected.
func (s *OS) ReadFile(h snapshot.FileHandle) ([]byte, error) {
	info, err := os.Stat(h.Path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", h.Path)
	}

	data, err := os.ReadFile(h.Path)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Read file from disk",
		zap.String("filePath", h.Path),
		zap.Int("contentSizeBytes", len(data)))
	return data, nil
}
