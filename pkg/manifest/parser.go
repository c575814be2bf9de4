package manifest

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/arthur-debert/manifestdestiny/pkg/errors"
	"github.com/arthur-debert/manifestdestiny/pkg/filesystem"
	"github.com/arthur-debert/manifestdestiny/pkg/ini"
	"github.com/arthur-debert/manifestdestiny/pkg/logging"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
)

// IncludePrefix marks a section header that pulls in another manifest.
const IncludePrefix = "include:"

// Options configures a Parser.
type Options struct {
	// FS is the filesystem manifests are read from. Defaults to the OS.
	FS types.FS
	// Defaults is the scope used for files read without an override scope.
	Defaults types.Vars
	// Strict rejects duplicate sections and keys, and makes a missing
	// include target an error instead of being skipped.
	Strict bool
	// Comments, Separators and DefaultSection tune the section reader;
	// empty values fall back to the ini package defaults.
	Comments       string
	Separators     []string
	DefaultSection string
}

// DefaultOptions returns strict options reading from the OS filesystem.
func DefaultOptions() Options {
	return Options{
		FS:             filesystem.NewOS(),
		Strict:         true,
		Comments:       ini.DefaultComments,
		Separators:     append([]string(nil), ini.DefaultSeparators...),
		DefaultSection: ini.DefaultSection,
	}
}

// Parser reads manifests into a flat, ordered list of tests.
//
// A Parser accumulates: every Read appends to the same list and the list
// never shrinks. It is not safe for concurrent use.
type Parser struct {
	fs       types.FS
	defaults types.Vars
	strict   bool
	syntax   ini.Options

	tests   []types.Test
	rootDir string

	// includedBy maps an included manifest to every manifest that included
	// it, in reading order.
	includedBy map[string][]string
	// active holds the manifests currently being expanded.
	active map[string]bool
}

// New creates a Parser.
func New(opts Options) *Parser {
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	return &Parser{
		fs:       opts.FS,
		defaults: opts.Defaults.Copy(),
		strict:   opts.Strict,
		syntax: ini.Options{
			Comments:       opts.Comments,
			Separators:     opts.Separators,
			DefaultSection: opts.DefaultSection,
			Strict:         opts.Strict,
		},
		includedBy: make(map[string][]string),
		active:     make(map[string]bool),
	}
}

// NewFromFiles creates a Parser and reads the given manifests into it.
func NewFromFiles(opts Options, paths ...string) (*Parser, error) {
	p := New(opts)
	if len(paths) == 0 {
		return p, nil
	}
	if err := p.Read(paths...); err != nil {
		return p, err
	}
	return p, nil
}

// Strict reports whether the parser runs in strict mode.
func (p *Parser) Strict() bool { return p.strict }

// FS returns the filesystem the parser reads from.
func (p *Parser) FS() types.FS { return p.fs }

// RootDir returns the directory of the first manifest this parser read,
// or "" if nothing was read yet.
func (p *Parser) RootDir() string { return p.rootDir }

// Len returns the number of tests read so far.
func (p *Parser) Len() int { return len(p.tests) }

// Tests returns copies of every test read so far, in document order.
func (p *Parser) Tests() []types.Test {
	return p.Query()
}

// IncludedBy returns the manifests that included manifest, in the order
// they were read. It is empty for manifests that were only read directly.
func (p *Parser) IncludedBy(manifest string) []string {
	return append([]string(nil), p.includedBy[manifest]...)
}

// Read reads the given manifests with the parser's default scope.
//
// All paths are checked for existence first; if any is missing a single
// MISSING_FILE error lists all of them and nothing is read. Reading is not
// transactional: when a later error aborts the call (a parse error, a
// missing include in strict mode, an include cycle) the tests appended
// before the failure stay in the parser.
func (p *Parser) Read(paths ...string) error {
	return p.ReadWithVars(nil, paths...)
}

// ReadWithVars reads the given manifests using vars as their scope instead
// of the parser defaults. An empty vars falls back to the defaults. The
// "here" variable is always recomputed for each file.
func (p *Parser) ReadWithVars(vars types.Vars, paths ...string) error {
	var missing []string
	for _, path := range paths {
		if !filesystem.Exists(p.fs, path) {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return errors.MissingFiles(missing...)
	}

	for _, path := range paths {
		if err := p.readFile(path, vars); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) readFile(path string, vars types.Vars) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve %s", path)
	}
	here := filepath.Dir(abs)

	logger := logging.GetLogger("manifest.parser").With().
		Str("manifest", abs).
		Logger()

	if p.active[abs] {
		return errors.Newf(errors.ErrIncludeCycle, "include cycle: %s is already being read", abs).
			WithDetail("path", abs)
	}
	p.active[abs] = true
	defer delete(p.active, abs)

	scope := vars
	if len(scope) == 0 {
		scope = p.defaults
	}
	scope = scope.Copy()
	scope[types.KeyHere] = here

	if p.rootDir == "" {
		p.rootDir = here
	}

	opts := p.syntax
	opts.Vars = scope
	sections, err := ini.Read(ini.FileSource{FS: p.fs, Path: abs}, opts)
	if err != nil {
		return err
	}
	logger.Debug().Int("sections", len(sections)).Msg("Read manifest")

	for _, section := range sections {
		if strings.HasPrefix(section.Name, IncludePrefix) {
			if err := p.include(abs, here, section); err != nil {
				return err
			}
			continue
		}

		test := make(types.Test, len(section.Values)+3)
		for k, v := range section.Values {
			test[k] = v
		}
		test[types.KeyName] = section.Name
		test[types.KeyPath] = resolve(here, section.Name)
		test[types.KeyManifest] = abs
		p.tests = append(p.tests, test)
	}
	return nil
}

func (p *Parser) include(manifest, here string, section types.Section) error {
	target := resolve(here, strings.TrimPrefix(section.Name, IncludePrefix))

	if !filesystem.Exists(p.fs, target) {
		if p.strict {
			return errors.Newf(errors.ErrMissingFile, "file '%s' does not exist", target).
				WithDetail("paths", []string{target}).
				WithDetail("manifest", manifest)
		}
		logger := logging.GetLogger("manifest.parser")
		logger.Warn().
			Str("manifest", manifest).
			Str("include", target).
			Msg("Skipping missing include")
		return nil
	}

	if !slices.Contains(p.includedBy[target], manifest) {
		p.includedBy[target] = append(p.includedBy[target], manifest)
	}
	return p.readFile(target, types.Vars(section.Values))
}

// resolve joins name onto dir unless name is already absolute.
func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
