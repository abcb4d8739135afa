package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"promptsnap/pkg/logging"
	"promptsnap/pkg/version"
)

const appName = "promptsnap"

// NewRootCmd builds the base command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   appName,
		Short: "promptsnap copies selected files to the clipboard as a prompt snapshot",
		Long: `promptsnap reads the selected files in order, drops secrets, lockfiles and
license files, and places a single <details>/<file> document on the clipboard,
ready to paste into an LLM prompt.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(debug, appName, version.Get().Version, cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Print development logs to stderr")

	root.AddCommand(newCopyCmd(), newRenderCmd(), newVersionCmd())
	return root
}

// reportedError marks an error the user has already been notified about.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// Execute runs the root command against the process arguments.
// Errors not already shown to the user (bad flags, unknown commands) are printed.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil && !errors.As(err, new(*reportedError)) {
		root.PrintErrln("Error:", err)
	}
	return err
}
