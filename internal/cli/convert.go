package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/manifestdestiny/pkg/commands"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		pattern string
		ignore  []string
	)

	cmd := &cobra.Command{
		Use:     "convert <directory>...",
		Short:   MsgConvertShort,
		Long:    MsgConvertLong,
		Example: MsgConvertExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := commands.Convert(commands.ConvertOptions{
				Directories: args,
				Pattern:     pattern,
				Ignore:      ignore,
				FileSystem:  a.fs,
			})
			if err != nil {
				return err
			}
			if text != "" {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", MsgFlagPattern)
	cmd.Flags().StringArrayVarP(&ignore, "ignore", "i", nil, MsgFlagIgnore)
	return cmd
}
