package loader

import (
	"fmt"
	"os"

	"github.com/convexgen/convexgen/resolver"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the project config looked up in the working directory.
const DefaultConfigFile = "convexgen.yaml"

// Config is the convexgen.yaml project configuration.
type Config struct {
	// Schema is the path to the schema document. Empty means auto-discover.
	Schema string `yaml:"schema"`

	Output struct {
		Backend    string `yaml:"backend"`
		Components string `yaml:"components"`
		Routes     string `yaml:"routes"`
	} `yaml:"output"`

	Validation struct {
		IncludeMessages bool `yaml:"includeMessages"`
	} `yaml:"validation"`

	// Overrides maps table name to field name to a validation override.
	Overrides map[string]map[string]resolver.FieldOverride `yaml:"overrides"`
}

// DefaultConfig returns the configuration used when no convexgen.yaml exists.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Output.Backend = "convex"
	cfg.Output.Components = "src/components"
	cfg.Output.Routes = "src/routes"
	cfg.Validation.IncludeMessages = true
	return cfg
}

// LoadConfig reads and parses the YAML config at path. A missing file is not
// an error: defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config YAML: %w", err)
	}
	if cfg.Output.Backend == "" {
		cfg.Output.Backend = "convex"
	}
	if cfg.Output.Components == "" {
		cfg.Output.Components = "src/components"
	}
	if cfg.Output.Routes == "" {
		cfg.Output.Routes = "src/routes"
	}
	return cfg, nil
}

// ApplyOverrides registers every configured field override on r.
func (c *Config) ApplyOverrides(r *resolver.Resolver) {
	for table, fields := range c.Overrides {
		for field, o := range fields {
			r.Override(table, field, o)
		}
	}
}
