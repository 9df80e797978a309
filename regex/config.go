package regex

// Config controls pattern compilation: how deeply groups may nest and
// whether literal-alternation patterns get an Aho-Corasick prefilter,
// mirroring meta.Config's Config/DefaultConfig/Validate shape.
type Config struct {
	// MaxGroupDepth caps how deeply parentheses may nest in a pattern.
	// Default: 64
	MaxGroupDepth int

	// EnablePrefilter builds a prefilter.Prefilter for patterns that are a
	// pure alternation of fixed literals, used to skip ahead to candidate
	// offsets during the Search* family instead of sliding one offset at a
	// time. Default: true
	EnablePrefilter bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxGroupDepth:   64,
		EnablePrefilter: true,
	}
}

// Validate checks that c's fields are within the ranges Compile accepts.
func (c Config) Validate() error {
	if c.MaxGroupDepth < 1 || c.MaxGroupDepth > 1000 {
		return &ConfigError{Field: "MaxGroupDepth", Message: "must be between 1 and 1000"}
	}
	return nil
}
