package logging

// Config holds logging configuration settings.
// Environment tags are relative; the host config nests them under NOJS_HOST_LOG_.
type Config struct {
	Level  Level  `toml:"level" env:"LEVEL"`
	Format Format `toml:"format" env:"FORMAT"`
}

// Finalize applies defaults and validates the configuration.
func (c *Config) Finalize() error {
	c.loadDefaults()
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}

func (c *Config) loadDefaults() {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
}

func (c *Config) validate() error {
	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}
