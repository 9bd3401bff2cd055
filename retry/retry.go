package retry

import "time"

// Policy provides a standardized interface for describing retry backoff.
// A Policy is an ordered, finite sequence of delays; it is immutable once
// constructed and is consulted by attempt index, never mutated.
//
// The policy is used by the request dispatcher for handling transient
// failures in API requests: network errors, timeouts, non-2xx responses
// and undecodable response bodies are all reattempted until the policy
// runs out of delays.
//
// Usage Example:
//
//	policy := retry.NewFixed(5, 500*time.Millisecond)
//
//	delay, ok := policy.Next(1)
//	// ok == true, delay == 500ms: wait before attempt 2
//
//	_, ok = policy.Next(6)
//	// ok == false: attempt 6's error is final
//
// Next receives the current attempt number (1-based) and returns the delay
// to wait before the following attempt. ok reports whether a retry remains;
// the executor needs it to distinguish exhaustion from a zero-length delay.
type Policy interface {
	Next(attempt int) (delay time.Duration, ok bool)
}

// NewNone returns a policy with no retries: every attempt's error is final.
func NewNone() Policy {
	return NewFixed(0, 0)
}
