// Package commands provides the operations behind the manifestparser CLI.
//
// Each command is implemented in its own subdirectory:
//   - query/     - Query: select tests and render them as a manifest
//   - paths/     - Paths: active test paths
//   - list/      - List: every test with its origin
//   - missing/   - Missing: tests whose file does not exist
//   - copytests/ - Copy: copy selected tests and their manifests
//   - convert/   - Convert: directory contents to manifest text
//
// This file re-exports the command functions so callers need a single
// import.
package commands

import (
	"github.com/arthur-debert/manifestdestiny/pkg/commands/convert"
	"github.com/arthur-debert/manifestdestiny/pkg/commands/copytests"
	"github.com/arthur-debert/manifestdestiny/pkg/commands/list"
	"github.com/arthur-debert/manifestdestiny/pkg/commands/missing"
	"github.com/arthur-debert/manifestdestiny/pkg/commands/paths"
	"github.com/arthur-debert/manifestdestiny/pkg/commands/query"
)

type (
	QueryOptions   = query.QueryOptions
	QueryResult    = query.QueryResult
	PathsOptions   = paths.PathsOptions
	ListOptions    = list.ListOptions
	ListResult     = list.ListResult
	TestInfo       = list.TestInfo
	MissingOptions = missing.MissingOptions
	MissingResult  = missing.MissingResult
	CopyOptions    = copytests.CopyOptions
	CopyResult     = copytests.CopyResult
	ConvertOptions = convert.ConvertOptions
)

// Query selects tests and renders them as a canonical manifest.
func Query(opts QueryOptions) (*QueryResult, error) {
	return query.Query(opts)
}

// Paths returns the paths of the tests that are not disabled.
func Paths(opts PathsOptions) ([]string, error) {
	return paths.Paths(opts)
}

// List describes every test of the manifests.
func List(opts ListOptions) (*ListResult, error) {
	return list.List(opts)
}

// Missing reports tests whose file does not exist.
func Missing(opts MissingOptions) (*MissingResult, error) {
	return missing.Missing(opts)
}

// Copy copies selected tests and their manifests.
func Copy(opts CopyOptions) (*CopyResult, error) {
	return copytests.Copy(opts)
}

// Convert renders directory contents as manifest text.
func Convert(opts ConvertOptions) (string, error) {
	return convert.Convert(opts)
}
