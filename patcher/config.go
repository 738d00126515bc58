package patcher

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Config represents patcher configuration
type Config struct {
	// Override takes conflicting content from the patch model
	Override bool `yaml:"override" mapstructure:"override"`
	// Include limits tree merges to matching document paths, all documents when empty
	Include []string `yaml:"include" mapstructure:"include"`
	// Exclude skips matching document paths
	Exclude []string `yaml:"exclude" mapstructure:"exclude"`
	// DryRun merges without writing
	DryRun bool `yaml:"dryRun" mapstructure:"dry-run"`
}

// DefaultConfig returns default config
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks filter patterns
func (c *Config) Validate() error {
	for _, patterns := range [][]string{c.Include, c.Exclude} {
		for _, pattern := range patterns {
			if !doublestar.ValidatePattern(pattern) {
				return fmt.Errorf("invalid pattern: %q", pattern)
			}
		}
	}
	return nil
}

// Match returns true if relative document path passes include and exclude filters
func (c *Config) Match(relative string) bool {
	if len(c.Include) > 0 && !matchAny(c.Include, relative) {
		return false
	}
	return !matchAny(c.Exclude, relative)
}

func matchAny(patterns []string, relative string) bool {
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, relative); matched {
			return true
		}
	}
	return false
}
