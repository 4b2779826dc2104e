package http

import "time"

// BackoffConfig controls retries for failed requests.
type BackoffConfig struct {
	// MaxRetries is the number of additional attempts after the first one.
	MaxRetries int
	// InitialInterval is the wait before the first retry.
	InitialInterval time.Duration
	// Multiplier scales the interval after each retry.
	Multiplier float64
}

// NewBackoffConfig creates a backoff configuration with default values.
func NewBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:      2,
		InitialInterval: 500 * time.Millisecond,
		Multiplier:      2.0,
	}
}

// WithMaxRetries sets the number of retries.
func (b *BackoffConfig) WithMaxRetries(maxRetries int) *BackoffConfig {
	b.MaxRetries = maxRetries
	return b
}

// WithInitialInterval sets the wait before the first retry.
func (b *BackoffConfig) WithInitialInterval(interval time.Duration) *BackoffConfig {
	b.InitialInterval = interval
	return b
}

// WithMultiplier sets the interval growth factor.
func (b *BackoffConfig) WithMultiplier(multiplier float64) *BackoffConfig {
	b.Multiplier = multiplier
	return b
}

// interval returns the wait before retry number attempt (zero-based).
func (b *BackoffConfig) interval(attempt int) time.Duration {
	wait := float64(b.InitialInterval)
	for i := 0; i < attempt; i++ {
		wait *= b.Multiplier
	}
	return time.Duration(wait)
}
