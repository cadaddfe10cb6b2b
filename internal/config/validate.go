package config

import (
	"fmt"
	"strings"

	"slipstream/internal/melee"
)

// Validate checks the configuration for values that cannot work. It does not
// touch the filesystem; missing directories surface when they are used.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Paths.ReplayDir) == "" {
		problems = append(problems, "paths.replay_dir must be set")
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		problems = append(problems, "paths.data_dir must be set")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format: unsupported value %q (use console or json)", c.Logging.Format))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level: unsupported value %q (use debug, info, warn, or error)", c.Logging.Level))
	}

	for name, v := range c.Analysis.JumpThresholds {
		if _, ok := melee.CharacterByName(name); !ok {
			problems = append(problems, fmt.Sprintf("analysis.jump_thresholds: unknown character %q", name))
		}
		if v <= 0 {
			problems = append(problems, fmt.Sprintf("analysis.jump_thresholds[%q]: threshold must be positive, got %v", name, v))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
