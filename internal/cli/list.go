package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/manifestdestiny/pkg/commands"
	"github.com/arthur-debert/manifestdestiny/pkg/ui/styles"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <manifest>...",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.List(commands.ListOptions{
				Manifests: args,
				Parser:    a.parserOptions(),
			})
			if err != nil {
				return err
			}

			if len(result.Tests) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoTests)
				return nil
			}

			table, err := renderTestTable(result)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), table)

			disabled := 0
			for _, test := range result.Tests {
				if test.Disabled {
					disabled++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgListFooter, len(result.Tests), disabled)
			return nil
		},
	}
}

func renderTestTable(result *commands.ListResult) (string, error) {
	name := styles.GetStyle("TestName")
	muted := styles.GetStyle("Muted")

	data := pterm.TableData{{MsgTableHeaderName, MsgTableHeaderPath, MsgTableHeaderFrom, MsgTableHeaderState}}
	for _, test := range result.Tests {
		state := ""
		nameCell := name.Render(test.Name)
		if test.Disabled {
			state = MsgListDisabled
			nameCell = muted.Render(test.Name)
		}
		data = append(data, []string{
			nameCell,
			relativeTo(result.RootDir, test.Path),
			relativeTo(result.RootDir, test.Manifest),
			state,
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// relativeTo shortens path for display when it lies below root.
func relativeTo(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
