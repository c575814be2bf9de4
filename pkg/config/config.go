package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/manifestdestiny/pkg/errors"
	"github.com/arthur-debert/manifestdestiny/pkg/manifest"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "MANIFESTPARSER_"
	// ProjectFile is looked up in the working directory.
	ProjectFile = ".manifestparser.toml"
	// UserFile is looked up under the XDG config directories.
	UserFile = "manifestparser/config.toml"
)

// Output color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the effective configuration.
type Config struct {
	Parser  ParserConfig  `koanf:"parser" toml:"parser"`
	Logging LoggingConfig `koanf:"logging" toml:"logging"`
	Output  OutputConfig  `koanf:"output" toml:"output"`
}

// ParserConfig tunes manifest parsing.
type ParserConfig struct {
	Strict     bool              `koanf:"strict" toml:"strict"`
	Comments   string            `koanf:"comments" toml:"comments"`
	Separators []string          `koanf:"separators" toml:"separators"`
	Default    string            `koanf:"default" toml:"default"`
	Variables  map[string]string `koanf:"variables" toml:"variables"`
}

// LoggingConfig controls the logger set up by the CLI.
type LoggingConfig struct {
	Verbosity int  `koanf:"verbosity" toml:"verbosity"`
	File      bool `koanf:"file" toml:"file"`
}

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	Color string `koanf:"color" toml:"color"`
}

// LoadOptions tells Load where to look beyond the built-in defaults.
type LoadOptions struct {
	// ConfigFile is an explicit file loaded last among files. It must exist.
	ConfigFile string
	// WorkDir is searched for ProjectFile. Empty means the current directory.
	WorkDir string
	// Overrides are applied on top of everything else, keyed by dotted path
	// (for example "parser.strict").
	Overrides map[string]interface{}
}

// Load builds the effective configuration: embedded defaults, then the user
// config file, the project file, the explicit file, environment variables
// and finally the overrides.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Load config files if they exist
	for _, path := range configFiles(opts) {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
	}
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.ConfigFile)
		}
		if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", opts.ConfigFile)
		}
	}

	// 3. Load env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Load overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func configFiles(opts LoadOptions) []string {
	var paths []string
	if path, err := xdg.SearchConfigFile(UserFile); err == nil {
		paths = append(paths, path)
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	project := filepath.Join(workDir, ProjectFile)
	if _, err := os.Stat(project); err == nil {
		paths = append(paths, project)
	}
	return paths
}

func (c *Config) validate() error {
	if c.Parser.Comments == "" {
		return errors.New(errors.ErrConfigLoad, "parser.comments must not be empty")
	}
	if len(c.Parser.Separators) == 0 {
		return errors.New(errors.ErrConfigLoad, "parser.separators must not be empty")
	}
	for _, sep := range c.Parser.Separators {
		if sep == "" {
			return errors.New(errors.ErrConfigLoad, "parser.separators must not contain empty strings")
		}
	}
	if c.Parser.Default == "" {
		return errors.New(errors.ErrConfigLoad, "parser.default must not be empty")
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigLoad, "output.color must be one of auto, always, never (got %q)", c.Output.Color)
	}
	return nil
}

// ManifestOptions returns parser options reading from fsys.
func (c ParserConfig) ManifestOptions(fsys types.FS) manifest.Options {
	return manifest.Options{
		FS:             fsys,
		Defaults:       types.Vars(c.Variables).Copy(),
		Strict:         c.Strict,
		Comments:       c.Comments,
		Separators:     append([]string(nil), c.Separators...),
		DefaultSection: c.Default,
	}
}
