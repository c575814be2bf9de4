package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/manifestdestiny/pkg/cliargs"
	"github.com/arthur-debert/manifestdestiny/pkg/commands"
	"github.com/arthur-debert/manifestdestiny/pkg/errors"
	"github.com/arthur-debert/manifestdestiny/pkg/ui/styles"
)

func newCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:                "copy <from-manifest> <to> [-tag] [--key=value]",
		Short:              MsgCopyShort,
		Long:               MsgCopyLong,
		Example:            MsgCopyExample,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}

			parsed, err := cliargs.Parse(args)
			if err != nil {
				return err
			}
			if len(parsed.Positional) != 2 {
				return errors.Newf(errors.ErrArgument, MsgErrCopyArgs, len(parsed.Positional))
			}

			result, err := commands.Copy(commands.CopyOptions{
				From:        parsed.Positional[0],
				To:          parsed.Positional[1],
				Tags:        parsed.Tags,
				Constraints: parsed.Constraints,
				Parser:      a.parserOptions(),
			})
			if err != nil {
				return err
			}

			warning := styles.GetStyle("Warning")
			for _, path := range result.Skipped {
				fmt.Fprintln(cmd.ErrOrStderr(), warning.Render(fmt.Sprintf(MsgCopySkipped, path)))
			}
			if len(result.Manifests) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgCopyNothing)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgCopyDone, len(result.Manifests), len(result.Tests), result.Destination)
			return nil
		},
	}
}
