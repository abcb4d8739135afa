package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptsnap/pkg/logging"
	"promptsnap/pkg/notify"
	"promptsnap/pkg/snapshot"
	"promptsnap/pkg/source"
)

func newRenderCmd() *cobra.Command {
	var opts snapshotOptions
	var digest bool

	renderCmd := &cobra.Command{
		Use:   "render [files...]",
		Short: "Print the snapshot document to stdout without touching the clipboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.Logger
			notifier := notify.NewConsole(cmd.ErrOrStderr(), logger)

			document, err := renderDocument(cmd, &opts, args)
			if err != nil {
				notifier.ShowError(err.Error())
				return reported(err)
			}

			if digest {
				fmt.Fprintln(cmd.OutOrStdout(), snapshot.Digest(document))
				return nil
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), document)
			return err
		},
	}

	opts.bind(renderCmd)
	renderCmd.Flags().BoolVar(&digest, "digest", false, "Print only the xxh3 digest of the document")
	return renderCmd
}

// renderDocument builds the document without a clipboard; Build never notifies.
func renderDocument(cmd *cobra.Command, opts *snapshotOptions, args []string) (string, error) {
	logger := logging.Logger

	settings, err := opts.resolve(cmd, logger)
	if err != nil {
		return "", err
	}
	selection, err := opts.selection(args, cmd.InOrStdin(), logger)
	if err != nil {
		return "", err
	}

	p := snapshot.NewPipeline(settings.Snapshot, source.NewOS(logger), nil, nil, logger)
	document, err := p.Build(selection)
	if err != nil {
		return "", fmt.Errorf("failed to build snapshot: %w", err)
	}
	return document, nil
}
