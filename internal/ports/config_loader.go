package ports

import "github.com/pittengermdp/advent-of-code/internal/domain"

// ConfigLoader loads runtime settings from a source (e.g., a YAML file).
type ConfigLoader interface {
	Load(path string) (domain.Config, error)
}
