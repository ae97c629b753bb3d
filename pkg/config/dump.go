package config

import (
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/dotmerge/pkg/errors"
)

// Dump serializes the effective configuration as "toml" or "yaml"
func (c *Config) Dump(format string) ([]byte, error) {
	switch format {
	case "toml", "":
		return toml.Marshal(c)
	case "yaml", "yml":
		return yaml.Marshal(c)
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q (want toml or yaml)", format)
}
