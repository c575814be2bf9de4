// Package copytests copies a selection of tests, together with the
// manifests that describe them, to another directory.
package copytests

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/manifestdestiny/pkg/errors"
	"github.com/arthur-debert/manifestdestiny/pkg/filesystem"
	"github.com/arthur-debert/manifestdestiny/pkg/logging"
	"github.com/arthur-debert/manifestdestiny/pkg/manifest"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
)

// CopyOptions defines the options for the Copy command.
type CopyOptions struct {
	// From is the manifest to copy from.
	From string
	// To is a directory, an existing manifest to overwrite, or a directory
	// to create.
	To string
	// Tags and Constraints select the tests to copy.
	Tags        []string
	Constraints types.Constraints
	// Parser configures how manifests are read. Its FS is used for writing
	// too.
	Parser manifest.Options
}

// CopyResult describes what was copied. Paths are relative to the source
// directory.
type CopyResult struct {
	Destination string
	Manifests   []string
	Tests       []string
	// Skipped holds the absolute paths of tests that could not be copied.
	Skipped []string
}

// Copy copies the selected tests and every manifest involved in reading
// them. Nothing is written when no test is selected.
func Copy(opts CopyOptions) (*CopyResult, error) {
	log := logging.GetLogger("commands.copy")
	log.Debug().Str("from", opts.From).Str("to", opts.To).Msg("Executing command")
	defer logging.LogOperationStart(log, "copy")()

	if opts.Parser.FS == nil {
		opts.Parser.FS = filesystem.NewOS()
	}
	fsys := opts.Parser.FS

	from, err := filepath.Abs(opts.From)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve %s", opts.From)
	}
	if !filesystem.Exists(fsys, from) {
		return nil, errors.MissingFiles(from)
	}
	fromDir := filepath.Dir(from)

	p, err := manifest.NewFromFiles(opts.Parser, from)
	if err != nil {
		return nil, err
	}

	toDir, toManifest, err := destination(fsys, from, opts.To)
	if err != nil {
		return nil, err
	}
	result := &CopyResult{Destination: toManifest}

	tests := p.Get(manifest.Query{Tags: opts.Tags, Constraints: opts.Constraints})
	if len(tests) == 0 {
		log.Info().Msg("No tests selected, nothing to copy")
		return result, nil
	}

	for _, m := range involvedManifests(p, from, tests) {
		rel, ok := below(fromDir, m)
		if !ok {
			log.Warn().Str("manifest", m).Msg("Skipping manifest outside the source directory")
			continue
		}
		dst := filepath.Join(toDir, rel)
		if m == from {
			dst = toManifest
		}
		if err := filesystem.CopyFile(fsys, m, dst); err != nil {
			return result, errors.Wrapf(err, errors.ErrFileWrite, "cannot copy %s", m)
		}
		result.Manifests = append(result.Manifests, rel)
	}

	seen := make(map[string]bool)
	for _, test := range tests {
		src := test.Path()
		if seen[src] {
			continue
		}
		seen[src] = true

		rel, ok := below(fromDir, src)
		if filepath.IsAbs(test.Name()) || !ok {
			log.Warn().Str("test", src).Msg("Skipping test outside the source directory")
			result.Skipped = append(result.Skipped, src)
			continue
		}
		if !filesystem.Exists(fsys, src) {
			log.Warn().Str("test", src).Msg("Missing test: file does not exist")
			result.Skipped = append(result.Skipped, src)
			continue
		}
		if err := filesystem.CopyFile(fsys, src, filepath.Join(toDir, rel)); err != nil {
			return result, errors.Wrapf(err, errors.ErrFileWrite, "cannot copy %s", src)
		}
		result.Tests = append(result.Tests, rel)
	}

	log.Info().
		Int("manifests", len(result.Manifests)).
		Int("tests", len(result.Tests)).
		Int("skipped", len(result.Skipped)).
		Msg("Command finished")
	return result, nil
}

// destination resolves the target directory and manifest path. An
// existing directory receives a manifest named like the source, an existing
// file is overwritten in place, and a missing path is created as a directory.
func destination(fsys types.FS, from, to string) (string, string, error) {
	abs, err := filepath.Abs(to)
	if err != nil {
		return "", "", errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve %s", to)
	}
	if filesystem.IsDir(fsys, abs) {
		return abs, filepath.Join(abs, filepath.Base(from)), nil
	}
	if filesystem.Exists(fsys, abs) {
		return filepath.Dir(abs), abs, nil
	}

	for dir := filepath.Dir(abs); ; dir = filepath.Dir(dir) {
		if filesystem.Exists(fsys, dir) {
			if !filesystem.IsDir(fsys, dir) {
				return "", "", errors.Newf(errors.ErrInvalidInput, "%s is not a directory", dir)
			}
			break
		}
		if dir == filepath.Dir(dir) {
			break
		}
	}
	if err := fsys.MkdirAll(abs, 0755); err != nil {
		return "", "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", abs)
	}
	return abs, filepath.Join(abs, filepath.Base(from)), nil
}

// involvedManifests returns, sorted, the manifests that contributed the
// tests, every manifest that included them on any path down from the root,
// and the root manifest itself.
func involvedManifests(p *manifest.Parser, root string, tests []types.Test) []string {
	set := map[string]bool{root: true}
	var pending []string
	for _, test := range tests {
		pending = append(pending, test.Manifest())
	}
	for len(pending) > 0 {
		m := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if m == "" || set[m] {
			continue
		}
		set[m] = true
		pending = append(pending, p.IncludedBy(m)...)
	}

	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// below returns path relative to dir when path lies inside dir.
func below(dir, path string) (string, bool) {
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}
