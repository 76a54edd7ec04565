package rankfast

// Config holds configuration settings for a ranking run
type Config struct {
	// NumWorkers is the maximum number of oracle queries issued
	// concurrently during a pairing pass. The comparisons within one
	// pairing pass are mutually independent, so they may be resolved in
	// parallel without changing the result. 1 (the default) keeps the
	// run fully sequential, which also makes the literal query sequence
	// deterministic.
	NumWorkers int
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		NumWorkers: 1,
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	out := *c
	if out.NumWorkers < 1 {
		out.NumWorkers = d.NumWorkers
	}
	return &out
}
