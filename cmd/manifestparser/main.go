package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/manifestdestiny/internal/cli"
	"github.com/arthur-debert/manifestdestiny/pkg/errors"
	"github.com/arthur-debert/manifestdestiny/pkg/logging"
	"github.com/arthur-debert/manifestdestiny/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		logger := logging.GetLogger("main")
		logger.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Strs("details", errors.DetailKeys(err)).
			Msg("Command failed")

		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// Bad arguments get the usage of the command that rejected them
		if errors.IsErrorCode(err, errors.ErrArgument) {
			fmt.Fprintln(os.Stderr)
			fmt.Fprint(os.Stderr, cmd.UsageString())
		}

		os.Exit(1)
	}
}
