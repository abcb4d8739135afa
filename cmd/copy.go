package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptsnap/pkg/clipboard"
	"promptsnap/pkg/logging"
	"promptsnap/pkg/notify"
	"promptsnap/pkg/snapshot"
	"promptsnap/pkg/source"
)

func newCopyCmd() *cobra.Command {
	var opts snapshotOptions
	var primary string

	copyCmd := &cobra.Command{
		Use:   "copy [files...]",
		Short: "Copy the selected files to the clipboard as a prompt snapshot",
		Long: `Copy reads every selected file in the order given and places one document
on the clipboard. Files ending in .env, .lock or LICENSE are left out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.Logger
			notifier := notify.NewConsole(cmd.ErrOrStderr(), logger)

			settings, err := opts.resolve(cmd, logger)
			if err != nil {
				notifier.ShowError(err.Error())
				return reported(err)
			}

			selection, err := opts.selection(args, cmd.InOrStdin(), logger)
			if err != nil {
				notifier.ShowError(err.Error())
				return reported(err)
			}

			target, err := clipboard.New(settings.Clipboard, settings.Output, cmd.OutOrStdout(), logger)
			if err != nil {
				notifier.ShowError(err.Error())
				return reported(err)
			}

			var primaryHandle snapshot.FileHandle
			switch {
			case primary != "":
				primaryHandle = snapshot.FileHandle{Path: primary}
			case len(selection) > 0:
				primaryHandle = selection[0]
			}

			p := snapshot.NewPipeline(settings.Snapshot, source.NewOS(logger), target, notifier, logger)
			if err := p.Run(primaryHandle, selection); err != nil {
				logger.Debug("Snapshot run failed", zap.Error(err))
				return reported(err)
			}
			return nil
		},
	}

	opts.bind(copyCmd)
	opts.bindOutput(copyCmd)
	copyCmd.Flags().StringVar(&primary, "primary", "", "File the snapshot was started from (defaults to the first selected file)")
	return copyCmd
}
