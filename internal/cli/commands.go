package cli

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/manifestdestiny/internal/version"
	"github.com/arthur-debert/manifestdestiny/pkg/config"
	"github.com/arthur-debert/manifestdestiny/pkg/filesystem"
	"github.com/arthur-debert/manifestdestiny/pkg/logging"
	"github.com/arthur-debert/manifestdestiny/pkg/manifest"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
	"github.com/arthur-debert/manifestdestiny/pkg/ui/styles"
)

// app carries the state shared by every command of one invocation.
type app struct {
	verbosity  int
	strict     bool
	configFile string

	cfg *config.Config
	fs  types.FS
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{fs: filesystem.NewOS()}

	rootCmd := &cobra.Command{
		Use:     "manifestparser",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&a.strict, "strict", true, MsgFlagStrict)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newQueryCmd(a))
	rootCmd.AddCommand(newPathsCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newMissingCmd(a))
	rootCmd.AddCommand(newCopyCmd(a))
	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads the configuration and prepares logging and terminal output.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	overrides := make(map[string]interface{})
	if flag := cmd.Flags().Lookup("strict"); flag != nil && flag.Changed {
		overrides["parser.strict"] = a.strict
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	verbosity := a.verbosity
	if cfg.Logging.Verbosity > verbosity {
		verbosity = cfg.Logging.Verbosity
	}
	logging.SetupLogger(verbosity, cfg.Logging.File)
	logging.LogCommand(cmd.Name(), args)

	styles.SetColorMode(cfg.Output.Color, os.Stdout)
	if styles.UseColor(cfg.Output.Color, os.Stdout) {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}
	return nil
}

func (a *app) parserOptions() manifest.Options {
	return a.cfg.Parser.ManifestOptions(a.fs)
}

// wantsHelp reports whether raw tokens ask for help.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "--help" {
			return true
		}
	}
	return false
}
