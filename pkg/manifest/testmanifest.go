package manifest

import "github.com/arthur-debert/manifestdestiny/pkg/types"

// DisabledTag marks a test a harness should not run.
const DisabledTag = "disabled"

// TestManifest adds harness-facing helpers on top of Parser.
type TestManifest struct {
	*Parser
}

// NewTestManifest wraps a new Parser.
func NewTestManifest(opts Options) *TestManifest {
	return &TestManifest{Parser: New(opts)}
}

// ActiveTests returns the tests that are not disabled.
func (m *TestManifest) ActiveTests() []types.Test {
	return m.Get(Query{Inverse: true, Tags: []string{DisabledTag}})
}

// TestPaths returns the paths of the active tests.
func (m *TestManifest) TestPaths() []string {
	return m.GetValues(types.KeyPath, Query{Inverse: true, Tags: []string{DisabledTag}})
}
