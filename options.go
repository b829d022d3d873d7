package blocksort

import (
	"go.uber.org/zap"

	"github.com/chronos-tachyon/blocksort/bwt"
)

// Config holds the settings of a Pipeline.
type Config struct {
	Sentinel          rune        // End marker appended to the text (default bwt.DefaultSentinel)
	SkipSentinelCheck bool        // Trust the caller that the sentinel does not occur in the text
	Observer          Observer    // Receives intermediate artifacts (default NopObserver)
	Logger            *zap.Logger // Debug records per stage (default zap.NewNop)
}

// Option is a functional option for configuring a Pipeline.
type Option func(*Config)

// WithSentinel sets the end marker appended to the text before the
// Burrows-Wheeler transform.
func WithSentinel(sentinel rune) Option {
	return func(c *Config) {
		c.Sentinel = sentinel
	}
}

// WithUncheckedSentinel skips the scan that rejects texts containing the
// sentinel.  The caller then guarantees that it does not occur.
func WithUncheckedSentinel() Option {
	return func(c *Config) {
		c.SkipSentinelCheck = true
	}
}

// WithObserver sets the observer that receives every intermediate artifact.
func WithObserver(obs Observer) Option {
	return func(c *Config) {
		c.Observer = obs
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}

func defaultConfig() Config {
	return Config{
		Sentinel: bwt.DefaultSentinel,
		Observer: NopObserver{},
		Logger:   zap.NewNop(),
	}
}
