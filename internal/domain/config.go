package domain

// DefaultCeiling is the per-color cube ceiling used by the feasibility
// check when no config file or flag overrides it.
var DefaultCeiling = CubeSet{Red: 12, Green: 13, Blue: 14}

// Config holds runtime settings for the tally pipeline.
type Config struct {
	// Ceiling bounds each round of a feasible game.
	Ceiling CubeSet
}

// DefaultConfig returns the config used when no cubetally.yaml is present.
func DefaultConfig() Config {
	return Config{Ceiling: DefaultCeiling}
}

// Validate rejects configs the aggregator cannot use.
func (c Config) Validate() error {
	if c.Ceiling.Red < 0 || c.Ceiling.Green < 0 || c.Ceiling.Blue < 0 {
		return &OpError{
			Op:   "config.validate",
			Kind: KindInvalidConfig,
			Err:  ErrInvalidConfig,
		}
	}
	return nil
}
