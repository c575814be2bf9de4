package ini

import (
	"bufio"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/manifestdestiny/pkg/errors"
	"github.com/arthur-debert/manifestdestiny/pkg/logging"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
)

const (
	// DefaultSection is the name of the section holding shared variables.
	DefaultSection = "DEFAULT"
	// DefaultComments are the characters that start a comment line.
	DefaultComments = ";#"
)

// DefaultSeparators are the key/value separators, in priority order.
var DefaultSeparators = []string{"=", ":"}

// Options controls how a source is read.
type Options struct {
	// Vars is the inherited scope. DEFAULT keys are merged into a copy of it.
	Vars types.Vars
	// Comments holds the characters that mark a comment line.
	Comments string
	// Separators are tried in order; the first one present splits the line.
	Separators []string
	// DefaultSection names the shared-variables section (case-insensitive).
	DefaultSection string
	// Strict rejects duplicate sections, duplicate or empty keys and a
	// second DEFAULT section.
	Strict bool
}

// DefaultOptions returns strict options with the standard comment
// characters and separators.
func DefaultOptions() Options {
	return Options{
		Comments:       DefaultComments,
		Separators:     append([]string(nil), DefaultSeparators...),
		DefaultSection: DefaultSection,
		Strict:         true,
	}
}

func (o Options) withDefaults() Options {
	if o.Comments == "" {
		o.Comments = DefaultComments
	}
	if len(o.Separators) == 0 {
		o.Separators = append([]string(nil), DefaultSeparators...)
	}
	if o.DefaultSection == "" {
		o.DefaultSection = DefaultSection
	}
	return o
}

// Read parses src into its sections, in document order. Each section's
// Values is the scope as it stood when the section was opened, overlaid by
// the section's own keys.
func Read(src Source, opts Options) ([]types.Section, error) {
	logger := logging.GetLogger("ini.reader").With().
		Str("source", src.Name()).
		Logger()

	rc, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	r := newReader(src.Name(), opts.withDefaults())

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		if err := r.consume(lineno, scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", src.Name())
	}

	sections := r.result()
	logger.Trace().Int("lines", lineno).Int("sections", len(sections)).Msg("Read manifest sections")
	return sections, nil
}

// cursorKind tells where key/value lines currently go.
type cursorKind int

const (
	noSection cursorKind = iota
	fillingDefault
	fillingSection
)

type cursor struct {
	kind  cursorKind
	index int
}

type pendingSection struct {
	name   string
	keys   []string
	values map[string]string
	base   types.Vars
}

// reader is a line consumer; it holds all state threaded between lines.
type reader struct {
	opts       Options
	source     string
	scope      types.Vars
	sections   []*pendingSection
	seen       map[string]bool
	sawDefault bool
	cur        cursor
	key        string
}

func newReader(source string, opts Options) *reader {
	scope := opts.Vars.Copy()
	return &reader{
		opts:   opts,
		source: source,
		scope:  scope,
		seen:   make(map[string]bool),
	}
}

func (r *reader) consume(lineno int, line string) error {
	stripped := strings.TrimSpace(line)

	if stripped == "" {
		r.key = ""
		return nil
	}

	first, _ := utf8.DecodeRuneInString(stripped)
	if strings.ContainsRune(r.opts.Comments, first) {
		return nil
	}

	if len(stripped) > 2 && stripped[0] == '[' && stripped[len(stripped)-1] == ']' {
		return r.openSection(lineno, strings.TrimSpace(stripped[1:len(stripped)-1]))
	}

	if r.cur.kind == noSection {
		return errors.Parse(r.source, lineno, "no section context for line %q", stripped)
	}

	for _, sep := range r.opts.Separators {
		idx := strings.Index(stripped, sep)
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(stripped[:idx])
		value := strings.TrimSpace(stripped[idx+len(sep):])
		return r.setValue(lineno, key, value)
	}

	lead, _ := utf8.DecodeRuneInString(line)
	if unicode.IsSpace(lead) && r.key != "" {
		target := r.target()
		target[r.key] = target[r.key] + "\n" + stripped
		return nil
	}

	return errors.Parse(r.source, lineno, "malformed line %q", stripped)
}

func (r *reader) openSection(lineno int, name string) error {
	r.key = ""

	if strings.EqualFold(name, r.opts.DefaultSection) {
		if r.opts.Strict && r.sawDefault {
			return errors.Parse(r.source, lineno, "duplicate %s section", r.opts.DefaultSection)
		}
		r.sawDefault = true
		r.cur = cursor{kind: fillingDefault}
		return nil
	}

	if r.opts.Strict && r.seen[name] {
		return errors.Parse(r.source, lineno, "duplicate section %q", name)
	}
	r.seen[name] = true

	r.sections = append(r.sections, &pendingSection{
		name:   name,
		values: make(map[string]string),
		base:   r.scope.Copy(),
	})
	r.cur = cursor{kind: fillingSection, index: len(r.sections) - 1}
	return nil
}

func (r *reader) setValue(lineno int, key, value string) error {
	if r.opts.Strict && key == "" {
		return errors.Parse(r.source, lineno, "empty key")
	}

	if r.cur.kind == fillingSection {
		section := r.sections[r.cur.index]
		if _, exists := section.values[key]; exists {
			if r.opts.Strict {
				return errors.Parse(r.source, lineno, "duplicate key %q in section %q", key, section.name)
			}
		} else {
			section.keys = append(section.keys, key)
		}
	}

	r.target()[key] = value
	r.key = key
	return nil
}

// target returns the mapping the cursor points at.
func (r *reader) target() map[string]string {
	if r.cur.kind == fillingDefault {
		return r.scope
	}
	return r.sections[r.cur.index].values
}

func (r *reader) result() []types.Section {
	out := make([]types.Section, len(r.sections))
	for i, s := range r.sections {
		out[i] = types.Section{
			Name:   s.name,
			Keys:   s.keys,
			Values: s.base.Overlay(s.values),
		}
	}
	return out
}
