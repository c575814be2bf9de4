package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/manifestdestiny/pkg/commands"
	"github.com/arthur-debert/manifestdestiny/pkg/errors"
)

func newMissingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "missing <manifest>...",
		Short: MsgMissingShort,
		Long:  MsgMissingLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Missing(commands.MissingOptions{
				Manifests: args,
				Parser:    a.parserOptions(),
			})
			if err != nil {
				return err
			}

			if len(result.Missing) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), MsgAllPresent, result.Total)
				return nil
			}

			paths := make([]string, len(result.Missing))
			for i, test := range result.Missing {
				paths[i] = test.Path()
				fmt.Fprintf(cmd.OutOrStdout(), MsgMissingItem, paths[i])
			}
			return errors.Newf(errors.ErrMissingFile, MsgErrMissingTests, len(paths), result.Total).
				WithDetail("paths", paths)
		},
	}
}
