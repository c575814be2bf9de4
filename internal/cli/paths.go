package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/manifestdestiny/pkg/commands"
)

func newPathsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paths <manifest>...",
		Short: MsgPathsShort,
		Long:  MsgPathsLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := commands.Paths(commands.PathsOptions{
				Manifests: args,
				Parser:    a.parserOptions(),
			})
			if err != nil {
				return err
			}
			for _, path := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
}
