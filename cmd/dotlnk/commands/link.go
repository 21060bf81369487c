package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pviana/dotlnk/pkg/commands/link"
	"github.com/pviana/dotlnk/pkg/types"
	"github.com/pviana/dotlnk/pkg/ui/confirmations"
	"github.com/pviana/dotlnk/pkg/ui/report"
)

func newLinkCmd() *cobra.Command {
	var (
		root       string
		manifest   string
		backupRoot string
		dryRun     bool
		assumeYes  bool
		noInput    bool
		format     string
	)

	cmd := &cobra.Command{
		Use:   "link",
		Short: MsgLinkShort,
		Long:  MsgLinkLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if assumeYes && noInput {
				return fmt.Errorf("--yes and --no-input are mutually exclusive")
			}
			outFormat, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			var confirmer types.Confirmer
			switch {
			case assumeYes:
				confirmer = types.ApproveAll()
			case noInput:
				confirmer = types.DeclineAll()
			default:
				confirmer = confirmations.NewConsole()
			}

			result, err := link.Run(link.Options{
				DotfilesRoot: root,
				ManifestPath: manifest,
				BackupsRoot:  backupRoot,
				DryRun:       dryRun,
				Confirmer:    confirmer,
			})
			if err != nil {
				return err
			}

			if err := report.RenderResults(cmd.OutOrStdout(), result.Results, result.Session, outFormat); err != nil {
				return err
			}
			if result.DryRun {
				fmt.Fprintln(cmd.OutOrStdout(), MsgDryRunNotice)
				return nil
			}
			if code := result.ExitCode(); code != 0 {
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", MsgFlagRoot)
	cmd.Flags().StringVar(&manifest, "manifest", "", MsgFlagManifest)
	cmd.Flags().StringVar(&backupRoot, "backup-root", "", MsgFlagBackup)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().BoolVar(&assumeYes, "yes", false, MsgFlagYes)
	cmd.Flags().BoolVar(&noInput, "no-input", false, MsgFlagNoInput)
	cmd.Flags().StringVar(&format, "format", string(report.FormatText), MsgFlagFormat)

	return cmd
}
