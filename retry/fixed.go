package retry

import "time"

type fixed struct {
	count    int
	interval time.Duration
}

var _ Policy = &fixed{}

// NewFixed returns a policy of exactly count delays, each equal to interval.
// A call with count=2, interval=time.Second allows 3 attempts in total:
// the initial one plus two retries, separated by 1s waits.
func NewFixed(count int, interval time.Duration) Policy {
	if count < 0 {
		count = 0
	}
	if interval < 0 {
		interval = 0
	}
	return &fixed{
		count:    count,
		interval: interval,
	}
}

func (f *fixed) Next(attempt int) (time.Duration, bool) {
	if attempt < 1 || attempt > f.count {
		return 0, false
	}
	return f.interval, true
}
