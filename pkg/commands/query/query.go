package query

import (
	"bytes"

	"github.com/arthur-debert/manifestdestiny/pkg/logging"
	"github.com/arthur-debert/manifestdestiny/pkg/manifest"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
)

// QueryOptions defines the options for the Query command.
type QueryOptions struct {
	// Manifests are the manifest files to read, in order.
	Manifests []string
	// Tags and Constraints select the tests to print.
	Tags        []string
	Constraints types.Constraints
	// Parser configures how manifests are read.
	Parser manifest.Options
}

// QueryResult holds the selected tests and their canonical rendering.
type QueryResult struct {
	Tests    []types.Test
	Manifest string
}

// Query reads the manifests and renders the selected tests as a manifest.
func Query(opts QueryOptions) (*QueryResult, error) {
	log := logging.GetLogger("commands.query")
	log.Debug().Strs("manifests", opts.Manifests).Msg("Executing command")
	defer logging.LogOperationStart(log, "query")()

	p, err := manifest.NewFromFiles(opts.Parser, opts.Manifests...)
	if err != nil {
		return nil, err
	}

	writeOpts := manifest.WriteOptions{
		LocalTags:        opts.Tags,
		LocalConstraints: opts.Constraints,
	}
	var buf bytes.Buffer
	if err := p.Write(&buf, writeOpts); err != nil {
		return nil, err
	}

	result := &QueryResult{
		Tests:    p.Get(writeOpts.Query()),
		Manifest: buf.String(),
	}
	log.Info().Int("selected", len(result.Tests)).Int("total", p.Len()).Msg("Command finished")
	return result, nil
}
