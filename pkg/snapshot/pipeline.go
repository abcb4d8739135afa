// File: pkg/snapshot/pipeline.go
package snapshot

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// SuccessMessage is shown once the document reached the clipboard.
const SuccessMessage = "Copied to clipboard as Prompt XML."

// Pipeline turns a selection into a snapshot document and hands it to the clipboard.
// It keeps no state between runs.
type Pipeline struct {
	cfg       Config
	source    ContentSource
	clipboard ClipboardTarget
	notifier  Notifier
	logger    *zap.Logger
}

// NewPipeline wires the pipeline to its host capabilities. A nil clipboard
// makes Run fail with ErrNoClipboard and a nil notifier drops messages, so a
// pipeline used only for Build needs neither.
func NewPipeline(cfg Config, source ContentSource, clipboard ClipboardTarget, notifier Notifier, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clipboard == nil {
		clipboard = noClipboard{}
	}
	if notifier == nil {
		notifier = discardNotifier{}
	}
	return &Pipeline{
		cfg:       cfg,
		source:    source,
		clipboard: clipboard,
		notifier:  notifier,
		logger:    logger,
	}
}

// Build filters the selection, reads every remaining file in order and
// returns the formatted document. Any read failure aborts the build.
func (p *Pipeline) Build(selection []FileHandle) (string, error) {
	if err := p.cfg.Validate(); err != nil {
		p.logger.Error("Invalid snapshot configuration", zap.Error(err))
		return "", err
	}

	kept := p.cfg.FilterSelection(selection)
	p.logger.Debug("Filtered selection",
		zap.Int("selected", len(selection)),
		zap.Int("kept", len(kept)),
		zap.Strings("excludeSuffixes", p.cfg.ExcludeSuffixes))

	records := make([]FileRecord, 0, len(kept))
	for _, h := range kept {
		record, err := p.readRecord(h)
		if err != nil {
			return "", err
		}
		records = append(records, record)
	}

	return Format(p.cfg.Style, records), nil
}

// readRecord reads one file and derives its identifier and language tag.
func (p *Pipeline) readRecord(h FileHandle) (FileRecord, error) {
	identifier := p.cfg.NormalizePath(h.Path)
	if p.cfg.Style == StyleAnchored && !p.cfg.hasAnchor(h.Path) {
		p.logger.Debug("Anchor not found in path, keeping raw path",
			zap.String("path", h.Path),
			zap.String("anchor", p.cfg.Anchor))
	}

	data, err := p.source.ReadFile(h)
	if err != nil {
		p.logger.Error("Failed to read file", zap.String("filePath", h.Path), zap.Error(err))
		return FileRecord{}, &ReadError{Path: h.Path, Err: err}
	}

	p.logger.Debug("Read file content",
		zap.String("filePath", h.Path),
		zap.String("identifier", identifier),
		zap.Int("contentSizeBytes", len(data)))

	record := FileRecord{
		Identifier: identifier,
		Content:    DecodeText(data),
	}
	if p.cfg.Style == StyleTagged {
		record.LanguageTag = LanguageTag(h.Path)
	}
	return record, nil
}

// Run builds the document for selection and writes it to the clipboard.
// primary is the handle the host was invoked on; it is only logged.
// Every failure is reported once through the notifier and returned.
func (p *Pipeline) Run(primary FileHandle, selection []FileHandle) error {
	startTime := time.Now()
	p.logger.Info("Starting snapshot",
		zap.String("primary", primary.Path),
		zap.Int("selected", len(selection)),
		zap.String("style", string(p.cfg.Style)))

	document, err := p.Build(selection)
	if err != nil {
		p.notifier.ShowError(userMessage(err))
		return fmt.Errorf("failed to build snapshot: %w", err)
	}

	if err := p.clipboard.WriteText(document); err != nil {
		p.logger.Debug("Clipboard target rejected document", zap.Error(err))
		p.notifier.ShowError(err.Error())
		return fmt.Errorf("clipboard write failed: %w", err)
	}

	p.logger.Info("Snapshot copied",
		zap.Int("documentBytes", len(document)),
		zap.String("digest", Digest(document)),
		zap.Duration("elapsed", time.Since(startTime)))
	p.notifier.ShowInfo(SuccessMessage)
	return nil
}

// userMessage turns a build error into the text shown to the user.
func userMessage(err error) string {
	var readErr *ReadError
	switch {
	case errors.Is(err, ErrMissingAnchor):
		return "Repository name is required"
	case errors.As(err, &readErr):
		return fmt.Sprintf("Failed to read %s: %v", readErr.Path, readErr.Err)
	default:
		return err.Error()
	}
}
