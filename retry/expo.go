package retry

import "time"

type expoConfig struct {
	initial time.Duration
}

func defaultExpoConfig() expoConfig {
	return expoConfig{
		initial: 50 * time.Millisecond,
	}
}

type ExpoConfigOption func(c *expoConfig)

func WithInitialDuration(d time.Duration) ExpoConfigOption {
	return func(c *expoConfig) {
		c.initial = d
	}
}

type expo struct {
	count  int
	config expoConfig
}

var _ Policy = &expo{}

// NewExponential returns a policy of count delays that double with every
// attempt, starting from the initial duration.
// Examples:
// NewExponential(3)
// ^ delays 50ms, 100ms, 200ms before attempts 2, 3, 4.
//
// NewExponential(0)
// ^ no retries at all
func NewExponential(count int, opts ...ExpoConfigOption) Policy {
	var config = defaultExpoConfig()
	for _, opt := range opts {
		opt(&config)
	}

	if count < 0 {
		count = 0
	}
	return &expo{
		count:  count,
		config: config,
	}
}

func (e *expo) Next(attempt int) (time.Duration, bool) {
	if attempt < 1 || attempt > e.count {
		return 0, false
	}
	return e.config.initial << (attempt - 1), true
}
