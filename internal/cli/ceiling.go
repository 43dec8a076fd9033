package cli

import (
	"github.com/spf13/cobra"

	"github.com/pittengermdp/advent-of-code/internal/domain"
	"github.com/pittengermdp/advent-of-code/internal/infra/config"
	"github.com/pittengermdp/advent-of-code/internal/ports"
)

// ceilingFlags holds the per-color override flags shared by the commands
// that use the feasibility bound. Precedence: flags > config file >
// defaults.
type ceilingFlags struct {
	configPath string
	red        int
	green      int
	blue       int

	// loader defaults to the filesystem config loader; tests swap it.
	loader ports.ConfigLoader
}

func (f *ceilingFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.configPath, "config", "c", "cubetally.yaml", "Config file with the feasibility ceiling")
	c.Flags().IntVar(&f.red, "max-red", 0, "Override the red ceiling")
	c.Flags().IntVar(&f.green, "max-green", 0, "Override the green ceiling")
	c.Flags().IntVar(&f.blue, "max-blue", 0, "Override the blue ceiling")
}

func (f *ceilingFlags) resolve(c *cobra.Command) (domain.CubeSet, error) {
	if f.loader == nil {
		f.loader = config.NewLoader()
	}

	cfg, err := f.loader.Load(f.configPath)
	if err != nil {
		return domain.CubeSet{}, err
	}

	if c.Flags().Changed("max-red") {
		cfg.Ceiling.Red = f.red
	}
	if c.Flags().Changed("max-green") {
		cfg.Ceiling.Green = f.green
	}
	if c.Flags().Changed("max-blue") {
		cfg.Ceiling.Blue = f.blue
	}

	if err := cfg.Validate(); err != nil {
		return domain.CubeSet{}, err
	}
	return cfg.Ceiling, nil
}
