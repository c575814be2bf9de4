package manifest

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/manifestdestiny/pkg/errors"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
)

// WriteOptions selects what Write emits. Global tags and constraints are
// factored into a leading [DEFAULT] section; local ones only narrow the
// selection.
type WriteOptions struct {
	GlobalTags        []string
	GlobalConstraints types.Constraints
	LocalTags         []string
	LocalConstraints  types.Constraints
}

// Query returns the combined query the options select with.
func (o WriteOptions) Query() Query {
	return Query{
		Tags:        union(o.GlobalTags, o.LocalTags),
		Constraints: o.GlobalConstraints.Merge(o.LocalConstraints),
	}
}

// Write renders the selected tests as a canonical manifest.
func (p *Parser) Write(w io.Writer, opts WriteOptions) error {
	bw := bufio.NewWriter(w)

	tests := p.Get(opts.Query())

	globalTags := make(map[string]bool, len(opts.GlobalTags))
	for _, tag := range opts.GlobalTags {
		globalTags[tag] = true
	}

	if len(opts.GlobalTags) > 0 || len(opts.GlobalConstraints) > 0 {
		fmt.Fprintln(bw, "[DEFAULT]")
		for _, tag := range union(opts.GlobalTags, nil) {
			fmt.Fprintf(bw, "%s =\n", tag)
		}
		for _, kv := range opts.GlobalConstraints {
			fmt.Fprintf(bw, "%s = %s\n", kv.Key, continued(kv.Value))
		}
		fmt.Fprintln(bw)
	}

	for _, test := range tests {
		fmt.Fprintf(bw, "[%s]\n", p.displayName(test))
		for _, key := range test.MetadataKeys() {
			if opts.GlobalConstraints.Has(key) {
				continue
			}
			if globalTags[key] && test[key] == "" {
				continue
			}
			fmt.Fprintf(bw, "%s = %s\n", key, continued(test[key]))
		}
		fmt.Fprintln(bw)
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot write manifest")
	}
	return nil
}

// displayName is the section header a test is written back with: its own
// name when absolute, otherwise its path relative to the root directory.
func (p *Parser) displayName(test types.Test) string {
	name := test.Name()
	if filepath.IsAbs(name) {
		return name
	}
	if p.rootDir == "" {
		return name
	}
	rel, err := filepath.Rel(p.rootDir, test.Path())
	if err != nil {
		return test.Path()
	}
	return filepath.ToSlash(rel)
}

// continued indents the extra lines of a multi-line value so they read back
// as continuation lines.
func continued(value string) string {
	return strings.ReplaceAll(value, "\n", "\n"+continuationIndent)
}

const continuationIndent = "    "

func union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			if seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
