package dispatch

import "sync/atomic"

// Token is a shared cancellation flag. Every holder of the same *Token
// observes the same state; cancelling is monotonic and idempotent, a
// cancelled token is never reset.
//
// Cancellation is soft: it does not abort an HTTP exchange that is already
// on the wire, it only suppresses delivery of the result and any further
// retries. The remote call may still complete server-side.
//
// One token may outlive a single call: registering it with
// Dispatcher.Run cancels a whole chain of sequential calls at once.
type Token struct {
	cancelled atomic.Bool
}

func NewToken() *Token {
	return &Token{}
}

// Cancel requests that any call guarded by this token stops delivering
// results and stops retrying. Safe to call from any goroutine, any
// number of times.
func (t *Token) Cancel() {
	t.cancelled.Store(true)
}

func (t *Token) Cancelled() bool {
	return t.cancelled.Load()
}
