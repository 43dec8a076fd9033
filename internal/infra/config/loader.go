// Package config loads cubetally.yaml runtime settings.
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pittengermdp/advent-of-code/internal/domain"
)

// Loader reads config files from the filesystem. It implements
// ports.ConfigLoader.
type Loader struct{}

func NewLoader() Loader { return Loader{} }

// Load reads the config at path. A missing file is not an error: the
// defaults apply, so callers can point at cubetally.yaml unconditionally.
func (Loader) Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}
