package guildlog

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Defaults for load behavior.
const (
	// DefaultFetchTimeout bounds a single URL fetch made by the default
	// fetcher.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultMaxInputBytes caps how much log text one load reads, from a
	// file or a URL.
	DefaultMaxInputBytes = 64 * 1024 * 1024 // 64MB

	// DefaultMaxLineBytes caps a single log line. Exceeding it is a
	// structural failure for the whole load, not a skippable line.
	DefaultMaxLineBytes = 1024 * 1024 // 1MB
)

// discardLogger swallows all output.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option configures the Load functions using the functional options pattern.
type Option func(*loadConfig)

// loadConfig holds internal configuration for loading.
type loadConfig struct {
	logger        *slog.Logger
	fetcher       Fetcher
	fetchTimeout  time.Duration
	maxInputBytes int64
	maxLineBytes  int
}

// defaultLoadConfig returns a loadConfig with sensible defaults.
func defaultLoadConfig() *loadConfig {
	return &loadConfig{
		logger:        discardLogger,
		fetchTimeout:  DefaultFetchTimeout,
		maxInputBytes: DefaultMaxInputBytes,
		maxLineBytes:  DefaultMaxLineBytes,
	}
}

// applyLoadOptions applies functional options to a loadConfig.
func applyLoadOptions(opts []Option) *loadConfig {
	cfg := defaultLoadConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// validate checks for invalid option values.
func (c *loadConfig) validate() error {
	if c.fetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %v", c.fetchTimeout)
	}
	if c.maxInputBytes <= 0 {
		return fmt.Errorf("max input bytes must be positive, got %d", c.maxInputBytes)
	}
	if c.maxLineBytes <= 0 {
		return fmt.Errorf("max line bytes must be positive, got %d", c.maxLineBytes)
	}
	return nil
}

// WithLogger sets a logger for load diagnostics (skipped lines, nulled
// timestamps). If logger is nil, logging stays disabled (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(c *loadConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFetcher sets the collaborator LoadFromURL fetches through.
// If f is nil, this option has no effect (the default HTTP fetcher remains
// active). Use this to stub out the network in tests.
func WithFetcher(f Fetcher) Option {
	return func(c *loadConfig) {
		if f != nil {
			c.fetcher = f
		}
	}
}

// WithFetchTimeout bounds a single URL fetch made by the default fetcher.
// Ignored when WithFetcher is supplied. Default: 10 seconds.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *loadConfig) {
		c.fetchTimeout = d
	}
}

// WithMaxInputBytes caps the bytes read from a file or URL.
// Default: 64MB.
func WithMaxInputBytes(n int64) Option {
	return func(c *loadConfig) {
		c.maxInputBytes = n
	}
}

// WithMaxLineBytes caps a single line during scanning.
// Default: 1MB.
func WithMaxLineBytes(n int) Option {
	return func(c *loadConfig) {
		c.maxLineBytes = n
	}
}
