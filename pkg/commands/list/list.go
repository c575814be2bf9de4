package list

import (
	"github.com/arthur-debert/manifestdestiny/pkg/logging"
	"github.com/arthur-debert/manifestdestiny/pkg/manifest"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	Manifests []string
	Parser    manifest.Options
}

// TestInfo is one row of the listing.
type TestInfo struct {
	Name     string
	Path     string
	Manifest string
	Disabled bool
}

// ListResult holds every test read from the manifests.
type ListResult struct {
	RootDir string
	Tests   []TestInfo
}

// List reads the manifests and describes every test in document order.
func List(opts ListOptions) (*ListResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Strs("manifests", opts.Manifests).Msg("Executing command")

	p, err := manifest.NewFromFiles(opts.Parser, opts.Manifests...)
	if err != nil {
		return nil, err
	}

	tests := p.Tests()
	result := &ListResult{
		RootDir: p.RootDir(),
		Tests:   make([]TestInfo, len(tests)),
	}
	for i, test := range tests {
		result.Tests[i] = describe(test)
	}

	log.Info().Int("testCount", len(result.Tests)).Msg("Command finished")
	return result, nil
}

func describe(test types.Test) TestInfo {
	return TestInfo{
		Name:     test.Name(),
		Path:     test.Path(),
		Manifest: test.Manifest(),
		Disabled: test.Has(manifest.DisabledTag),
	}
}
