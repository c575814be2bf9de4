package missing

import (
	"github.com/arthur-debert/manifestdestiny/pkg/logging"
	"github.com/arthur-debert/manifestdestiny/pkg/manifest"
	"github.com/arthur-debert/manifestdestiny/pkg/types"
)

// MissingOptions defines the options for the Missing command.
type MissingOptions struct {
	Manifests []string
	Parser    manifest.Options
}

// MissingResult lists the tests whose file does not exist.
type MissingResult struct {
	Total   int
	Missing []types.Test
}

// Missing reads the manifests and checks every test path on the parser's
// filesystem.
func Missing(opts MissingOptions) (*MissingResult, error) {
	log := logging.GetLogger("commands.missing")
	log.Debug().Strs("manifests", opts.Manifests).Msg("Executing command")

	p, err := manifest.NewFromFiles(opts.Parser, opts.Manifests...)
	if err != nil {
		return nil, err
	}

	result := &MissingResult{
		Total:   p.Len(),
		Missing: p.Missing(nil),
	}
	log.Info().Int("missing", len(result.Missing)).Int("total", result.Total).Msg("Command finished")
	return result, nil
}
