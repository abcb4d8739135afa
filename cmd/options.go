package cmd

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptsnap/pkg/clipboard"
	"promptsnap/pkg/config"
	"promptsnap/pkg/snapshot"
)

// snapshotOptions holds the flags shared by copy and render.
type snapshotOptions struct {
	configFile string
	envFile    string
	anchor     string
	style      string
	exclude    []string
	clipboard  string
	output     string
	stdin      bool
}

func (o *snapshotOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.configFile, "config", "", "Path to an HCL config file (default ./"+config.DefaultFile+" when present)")
	f.StringVar(&o.envFile, "env-file", "", "Path to a dotenv file with PROMPTSNAP_* variables (default ./.env when present)")
	f.StringVarP(&o.anchor, "anchor", "a", "", "Repository name that paths are made relative to")
	f.StringVar(&o.style, "style", "", "Output style: anchored or tagged")
	f.StringSliceVar(&o.exclude, "exclude", nil, "Path suffixes to leave out (replaces the default .env,.lock,LICENSE)")
	f.BoolVar(&o.stdin, "stdin", false, "Also read newline-separated file paths from stdin")
}

func (o *snapshotOptions) bindOutput(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.clipboard, "clipboard", "", "Destination: auto, system, file or stdout")
	f.StringVarP(&o.output, "output", "o", "", "Write the snapshot to this file instead of the clipboard")
}

// resolve loads config and environment settings and applies explicitly set flags on top.
func (o *snapshotOptions) resolve(cmd *cobra.Command, logger *zap.Logger) (config.Settings, error) {
	settings, err := config.Load(config.Options{File: o.configFile, EnvFile: o.envFile}, logger)
	if err != nil {
		return config.Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("anchor") {
		settings.Snapshot.Anchor = o.anchor
	}
	if flags.Changed("style") {
		style, err := snapshot.ParseStyle(o.style)
		if err != nil {
			return config.Settings{}, err
		}
		settings.Snapshot.Style = style
	}
	if flags.Changed("exclude") {
		settings.Snapshot.ExcludeSuffixes = o.exclude
	}
	if flags.Changed("clipboard") {
		mode, err := clipboard.ParseMode(o.clipboard)
		if err != nil {
			return config.Settings{}, err
		}
		settings.Clipboard = mode
	}
	if flags.Changed("output") {
		settings.Output = o.output
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// selection turns the positional arguments, followed by any stdin paths,
// into file handles. Paths are made absolute so the anchor can be found.
func (o *snapshotOptions) selection(args []string, stdin io.Reader, logger *zap.Logger) ([]snapshot.FileHandle, error) {
	paths := append([]string(nil), args...)
	if o.stdin {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				paths = append(paths, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read paths from stdin: %w", err)
		}
	}

	handles := make([]snapshot.FileHandle, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			logger.Warn("Failed to get absolute path", zap.String("path", p), zap.Error(err))
			abs = p
		}
		handles = append(handles, snapshot.FileHandle{Path: abs})
	}
	return handles, nil
}
