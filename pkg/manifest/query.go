package manifest

import (
	"github.com/arthur-debert/manifestdestiny/pkg/filesystem"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
)

// Predicate decides whether a test is selected.
type Predicate func(types.Test) bool

// Query selects tests by tag presence and key/value constraints.
//
// Without Inverse a test matches when it has every tag and every
// constrained key holds exactly the requested value. With Inverse a test
// matches when it has none of the tags and no constrained key holds the
// requested value; a missing key counts as not holding it. An empty Query
// matches every test.
type Query struct {
	Inverse     bool
	Tags        []string
	Constraints types.Constraints
}

// HasTags returns the tag predicate of the query.
func (q Query) HasTags() Predicate {
	if q.Inverse {
		return func(t types.Test) bool {
			for _, tag := range q.Tags {
				if t.Has(tag) {
					return false
				}
			}
			return true
		}
	}
	return func(t types.Test) bool {
		for _, tag := range q.Tags {
			if !t.Has(tag) {
				return false
			}
		}
		return true
	}
}

// MatchesConstraints returns the key/value predicate of the query.
func (q Query) MatchesConstraints() Predicate {
	if q.Inverse {
		return func(t types.Test) bool {
			for _, kv := range q.Constraints {
				if v, ok := t[kv.Key]; ok && v == kv.Value {
					return false
				}
			}
			return true
		}
	}
	return func(t types.Test) bool {
		for _, kv := range q.Constraints {
			if v, ok := t[kv.Key]; !ok || v != kv.Value {
				return false
			}
		}
		return true
	}
}

// Predicates returns the query as a list of checks for Parser.Query.
func (q Query) Predicates() []Predicate {
	return []Predicate{q.HasTags(), q.MatchesConstraints()}
}

// Query returns copies of the tests for which every check holds, in
// document order. Returned tests never alias the parser's records.
func (p *Parser) Query(checks ...Predicate) []types.Test {
	var out []types.Test
	for _, test := range p.tests {
		if matchAll(test, checks) {
			out = append(out, test.Copy())
		}
	}
	return out
}

// Get returns the tests selected by q.
func (p *Parser) Get(q Query) []types.Test {
	return p.Query(q.Predicates()...)
}

// GetValues returns the value of key for every test selected by q. Tests
// without that key are skipped.
func (p *Parser) GetValues(key string, q Query) []string {
	var out []string
	for _, test := range p.tests {
		if !matchAll(test, q.Predicates()) {
			continue
		}
		if v, ok := test[key]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Missing returns the tests whose path does not exist. A nil tests checks
// every test the parser has read.
func (p *Parser) Missing(tests []types.Test) []types.Test {
	if tests == nil {
		tests = p.Tests()
	}
	var out []types.Test
	for _, test := range tests {
		if !filesystem.Exists(p.fs, test.Path()) {
			out = append(out, test)
		}
	}
	return out
}

func matchAll(test types.Test, checks []Predicate) bool {
	for _, check := range checks {
		if !check(test) {
			return false
		}
	}
	return true
}
