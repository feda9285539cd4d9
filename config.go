package rift0

import "github.com/obinexus/rift0/registry"

// DefaultTokenCapacity is the initial size of a Context's token buffer
// (RIFT_TOKENIZER_DEFAULT_CAPACITY in the original tokenizer).
const DefaultTokenCapacity = 1024

const defaultPatternCapacity = registry.DefaultMaxPatterns

// Config configures Create. TokenCapacity is a starting size, not a
// ceiling: the token buffer doubles on demand. PatternCapacity is a
// ceiling: the registry accepts no more patterns than that
// (DefaultConfig sets it to registry.DefaultMaxPatterns).
type Config struct {
	// TokenCapacity is the initial token buffer size, rounded up to a
	// power of two no smaller than 64.
	TokenCapacity int
	// PatternCapacity bounds the number of patterns the context's
	// registry accepts.
	PatternCapacity int
	// Mode is the context's initial scanning/registration mode.
	Mode Mode
}

// DefaultConfig returns DefaultTokenCapacity / registry.DefaultMaxPatterns
// sized capacities under DefaultMode.
func DefaultConfig() Config {
	return Config{
		TokenCapacity:   DefaultTokenCapacity,
		PatternCapacity: defaultPatternCapacity,
		Mode:            DefaultMode(),
	}
}

// Validate rejects a Config with a non-positive capacity.
func (c Config) Validate() error {
	if c.TokenCapacity <= 0 {
		return newContextError(InvalidInput, nil, "TokenCapacity must be > 0, got %d", c.TokenCapacity)
	}
	if c.PatternCapacity <= 0 {
		return newContextError(InvalidInput, nil, "PatternCapacity must be > 0, got %d", c.PatternCapacity)
	}
	return nil
}

// WithTokenCapacity returns a copy of c with TokenCapacity set.
func (c Config) WithTokenCapacity(n int) Config {
	c.TokenCapacity = n
	return c
}

// WithPatternCapacity returns a copy of c with PatternCapacity set.
func (c Config) WithPatternCapacity(n int) Config {
	c.PatternCapacity = n
	return c
}

// WithMode returns a copy of c with Mode set.
func (c Config) WithMode(m Mode) Config {
	c.Mode = m
	return c
}
