package config

import "fmt"

// Validate checks normalized configuration values.
func (c *Config) Validate() error {
	switch c.Naming.HashAlgo {
	case "sha1", "sha256":
	default:
		return fmt.Errorf("naming.hash_algo must be sha1 or sha256, got %q", c.Naming.HashAlgo)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}

	return nil
}
