package config

import (
	"fmt"

	"github.com/pittengermdp/advent-of-code/internal/domain"
)

// MapConfig overlays the YAML values onto the default config and validates
// the result.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if yc.Ceiling.Red != nil {
		cfg.Ceiling.Red = *yc.Ceiling.Red
	}
	if yc.Ceiling.Green != nil {
		cfg.Ceiling.Green = *yc.Ceiling.Green
	}
	if yc.Ceiling.Blue != nil {
		cfg.Ceiling.Blue = *yc.Ceiling.Blue
	}

	if cfg.Ceiling.Red < 0 {
		return domain.Config{}, invalidField(path, "ceiling.red", "must be non-negative")
	}
	if cfg.Ceiling.Green < 0 {
		return domain.Config{}, invalidField(path, "ceiling.green", "must be non-negative")
	}
	if cfg.Ceiling.Blue < 0 {
		return domain.Config{}, invalidField(path, "ceiling.blue", "must be non-negative")
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%s: %s", field, msg),
	}
}
