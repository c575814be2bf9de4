package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/manifestdestiny/pkg/cliargs"
	"github.com/arthur-debert/manifestdestiny/pkg/commands"
)

func newQueryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:                "query <manifest>... [-tag] [--key=value]",
		Short:              MsgQueryShort,
		Long:               MsgQueryLong,
		Example:            MsgQueryExample,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}

			parsed, err := cliargs.Parse(args)
			if err != nil {
				return err
			}
			if len(parsed.Positional) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
				return nil
			}

			result, err := commands.Query(commands.QueryOptions{
				Manifests:   parsed.Positional,
				Tags:        parsed.Tags,
				Constraints: parsed.Constraints,
				Parser:      a.parserOptions(),
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), result.Manifest)
			return nil
		},
	}
}
