package config

// YAMLConfig mirrors the cubetally.yaml file layout.
type YAMLConfig struct {
	Ceiling YAMLCeiling `yaml:"ceiling"`
}

// YAMLCeiling holds the per-color feasibility bound. Absent fields keep
// the defaults.
type YAMLCeiling struct {
	Red   *int `yaml:"red"`
	Green *int `yaml:"green"`
	Blue  *int `yaml:"blue"`
}
