package commands

import (
	"github.com/spf13/cobra"

	"github.com/pviana/dotlnk/pkg/commands/status"
	"github.com/pviana/dotlnk/pkg/ui/report"
)

func newStatusCmd() *cobra.Command {
	var (
		root     string
		manifest string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			entries, err := status.Run(status.Options{
				DotfilesRoot: root,
				ManifestPath: manifest,
			})
			if err != nil {
				return err
			}

			return report.RenderStatus(cmd.OutOrStdout(), entries, outFormat)
		},
	}

	cmd.Flags().StringVar(&root, "root", "", MsgFlagRoot)
	cmd.Flags().StringVar(&manifest, "manifest", "", MsgFlagManifest)
	cmd.Flags().StringVar(&format, "format", string(report.FormatText), MsgFlagFormat)

	return cmd
}
