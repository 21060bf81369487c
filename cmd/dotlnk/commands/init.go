package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pviana/dotlnk/pkg/commands/initialize"
	"github.com/pviana/dotlnk/pkg/style"
)

func newInitCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := initialize.Run(initialize.Options{DotfilesRoot: root})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Starter manifest written to %s\n", style.PathStyle.Render(path))
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", MsgFlagRoot)

	return cmd
}
