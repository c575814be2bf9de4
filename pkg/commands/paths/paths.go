package paths

import (
	"github.com/arthur-debert/manifestdestiny/pkg/logging"
	"github.com/arthur-debert/manifestdestiny/pkg/manifest"
)

// PathsOptions defines the options for the Paths command.
type PathsOptions struct {
	Manifests []string
	Parser    manifest.Options
}

// Paths returns the paths of every test that is not disabled.
func Paths(opts PathsOptions) ([]string, error) {
	log := logging.GetLogger("commands.paths")
	log.Debug().Strs("manifests", opts.Manifests).Msg("Executing command")

	m := manifest.NewTestManifest(opts.Parser)
	if len(opts.Manifests) > 0 {
		if err := m.Read(opts.Manifests...); err != nil {
			return nil, err
		}
	}

	paths := m.TestPaths()
	log.Info().Int("active", len(paths)).Int("total", m.Len()).Msg("Command finished")
	return paths, nil
}
