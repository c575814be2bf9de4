package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/manifestdestiny/pkg/errors"
)

// TOML renders the configuration in the same format the config files use.
func (c *Config) TOML() ([]byte, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return data, nil
}
