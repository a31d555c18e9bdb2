package dm15

// Config holds model identity settings.
type Config struct {
	Name    string
	Version string
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default model identity.
func DefaultConfig() Config {
	return Config{Name: "dm15", Version: "1.0"}
}

// WithName sets the registered model name.
func WithName(name string) Option {
	return func(cfg *Config) {
		if name != "" {
			cfg.Name = name
		}
	}
}

// WithVersion sets the registered model version.
func WithVersion(version string) Option {
	return func(cfg *Config) {
		if version != "" {
			cfg.Version = version
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
