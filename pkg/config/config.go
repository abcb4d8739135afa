// Package config resolves promptsnap settings from built-in defaults, an HCL
// config file and the environment. Command-line flags are applied on top by
// the cmd package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"promptsnap/pkg/clipboard"
	"promptsnap/pkg/snapshot"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".promptsnap.hcl"

// Environment variables read by Load.
const (
	EnvAnchor          = "PROMPTSNAP_ANCHOR"
	EnvStyle           = "PROMPTSNAP_STYLE"
	EnvClipboard       = "PROMPTSNAP_CLIPBOARD"
	EnvExcludeSuffixes = "PROMPTSNAP_EXCLUDE_SUFFIXES" // Comma separated.
)

// Settings is the fully resolved configuration of one run.
type Settings struct {
	Snapshot  snapshot.Config
	Clipboard clipboard.Mode
	Output    string // Output file for clipboard mode "file" (and "auto" when set).
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Snapshot:  snapshot.DefaultConfig(),
		Clipboard: clipboard.ModeAuto,
	}
}

// Validate checks the values that cannot be fixed later in the pipeline.
// A missing anchor is left to the pipeline, which reports it to the user.
func (s Settings) Validate() error {
	if _, err := snapshot.ParseStyle(string(s.Snapshot.Style)); err != nil {
		return err
	}
	if _, err := clipboard.ParseMode(string(s.Clipboard)); err != nil {
		return err
	}
	return nil
}

// Options controls where Load looks for configuration.
type Options struct {
	Dir     string // Directory holding DefaultFile and .env; "" means the working directory.
	File    string // Explicit config file; must exist when set.
	EnvFile string // Explicit dotenv file; must exist when set.
}

// hclFile is the layout of a promptsnap HCL config file.
// Empty values leave the defaults untouched.
type hclFile struct {
	Anchor          string   `hcl:"anchor,optional"`
	Style           string   `hcl:"style,optional"`
	ExcludeSuffixes []string `hcl:"exclude_suffixes,optional"`
	Clipboard       string   `hcl:"clipboard,optional"`
	Output          string   `hcl:"output,optional"`
}

// Load resolves settings: defaults, then the HCL file, then the environment.
func Load(opts Options, logger *zap.Logger) (Settings, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := Default()

	path, required := opts.File, opts.File != ""
	if !required {
		path = filepath.Join(opts.Dir, DefaultFile)
	}
	if err := s.applyFile(path); err != nil {
		if !required && os.IsNotExist(err) {
			logger.Debug("No config file found", zap.String("file", path))
		} else {
			logger.Error("Failed to load config file", zap.String("file", path), zap.Error(err))
			return Settings{}, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		logger.Debug("Loaded config file", zap.String("file", path))
	}

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			logger.Error("Failed to load env file", zap.String("file", opts.EnvFile), zap.Error(err))
			return Settings{}, fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
	} else {
		_ = godotenv.Load(filepath.Join(opts.Dir, ".env"))
	}

	if err := s.applyEnv(os.LookupEnv); err != nil {
		return Settings{}, err
	}

	logger.Debug("Resolved settings",
		zap.String("anchor", s.Snapshot.Anchor),
		zap.String("style", string(s.Snapshot.Style)),
		zap.Strings("excludeSuffixes", s.Snapshot.ExcludeSuffixes),
		zap.String("clipboard", string(s.Clipboard)),
		zap.String("output", s.Output))
	return s, nil
}

func (s *Settings) applyFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	if parsed.Anchor != "" {
		s.Snapshot.Anchor = parsed.Anchor
	}
	if parsed.Style != "" {
		style, err := snapshot.ParseStyle(parsed.Style)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		s.Snapshot.Style = style
	}
	if len(parsed.ExcludeSuffixes) > 0 {
		s.Snapshot.ExcludeSuffixes = parsed.ExcludeSuffixes
	}
	if parsed.Clipboard != "" {
		mode, err := clipboard.ParseMode(parsed.Clipboard)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		s.Clipboard = mode
	}
	if parsed.Output != "" {
		s.Output = parsed.Output
	}
	return nil
}

// applyEnv overrides settings from environment variables. A variable that is
// set but empty still counts, so PROMPTSNAP_ANCHOR= clears the anchor.
func (s *Settings) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAnchor); ok {
		s.Snapshot.Anchor = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvStyle); ok && v != "" {
		style, err := snapshot.ParseStyle(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStyle, err)
		}
		s.Snapshot.Style = style
	}
	if v, ok := lookup(EnvClipboard); ok && v != "" {
		mode, err := clipboard.ParseMode(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvClipboard, err)
		}
		s.Clipboard = mode
	}
	if v, ok := lookup(EnvExcludeSuffixes); ok && v != "" {
		s.Snapshot.ExcludeSuffixes = SplitList(v)
	}
	return nil
}

// SplitList splits a comma separated list, dropping blank entries.
func SplitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
