package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/xsolla/store-go/errors"
	"github.com/xsolla/store-go/logger"
	"github.com/xsolla/store-go/retry"
)

// Dispatcher drives a Transport through a retry policy and exposes the
// same executor in two invocation styles:
//
//   - callback mode: ExecuteAsync(req, onComplete) runs the call on its
//     own goroutine and delivers the result through the callback;
//   - sequential mode: Await(ctx, req) blocks the caller and returns the
//     result, resolving the cancellation token from the unit of work the
//     caller runs in (see Run) when the request carries none.
//
// Retries for one call are strictly sequential: attempt N+1 never starts
// before attempt N's outcome is known, and no two attempts of the same
// call are ever in flight concurrently. Calls to different endpoints are
// independent of each other.
type Dispatcher struct {
	transport Transport
	policy    retry.Policy
	logger    logger.Logger

	async errgroup.Group

	// tasks maps a unit-of-work id to the token registered for it.
	// Written by Run on entry/exit, read by Await; never package-global.
	mu    sync.RWMutex
	tasks map[string]*Token
}

type config struct {
	// policy is the default retry policy for requests
	// that don't carry one
	// default: retry.NewNone()
	policy retry.Policy

	// logger receives dispatch diagnostics
	// default: logger.Noop
	logger logger.Logger

	// maxInFlight bounds the number of concurrent
	// callback-mode calls; 0 or negative means unbounded
	// default: 10
	maxInFlight int
}

func defaultConfig() *config {
	return &config{
		policy:      retry.NewNone(),
		logger:      &logger.Noop{},
		maxInFlight: 10,
	}
}

type ConfigOption func(c *config)

func WithPolicy(policy retry.Policy) ConfigOption {
	return func(c *config) {
		if policy != nil {
			c.policy = policy
		}
	}
}

func WithLogger(log logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = log
	}
}

func WithMaxInFlight(n int) ConfigOption {
	return func(c *config) {
		c.maxInFlight = n
	}
}

func NewDispatcher(transport Transport, opts ...ConfigOption) *Dispatcher {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	d := &Dispatcher{
		transport: transport,
		policy:    cfg.policy,
		logger:    cfg.logger,
		tasks:     map[string]*Token{},
	}
	if cfg.maxInFlight > 0 {
		d.async.SetLimit(cfg.maxInFlight)
	}
	return d
}

// execute runs the retry loop for one request. The second return value
// reports whether a result may be delivered: false means cancellation was
// observed and the outcome, if any, must be dropped.
//
// The token is consulted before the first attempt, after every exchange
// and after every retry wait. A cancellation that lands while an exchange
// is on the wire does not abort it; its result is discarded instead.
func (d *Dispatcher) execute(req *Request) (Result, bool) {
	policy := req.Policy
	if policy == nil {
		policy = d.policy
	}

	if req.Token != nil && req.Token.Cancelled() {
		return Result{}, false
	}

	attempt := 1
	for {
		err := d.transport.Do(req)

		if req.Token != nil && req.Token.Cancelled() {
			d.logger.Debugf(
				"dispatch: %s %s cancelled after attempt %d; result dropped",
				req.Method, req.Path, attempt,
			)
			return Result{}, false
		}
		if err == nil {
			return Result{Value: req.Into}, true
		}

		delay, ok := policy.Next(attempt)
		if !ok {
			d.logger.Warnf(
				"dispatch: %s %s exhausted all attempts; giving up. attempt=%d, error=%v",
				req.Method, req.Path, attempt, err,
			)
			return Result{Err: err}, true
		}

		d.logger.Warnf(
			"dispatch: %s %s failed; retrying. attempt=%d, backoff=%v, error=%v",
			req.Method, req.Path, attempt, delay, err,
		)
		time.Sleep(delay)

		if req.Token != nil && req.Token.Cancelled() {
			return Result{}, false
		}
		attempt++
	}
}

// ExecuteAsync invokes the executor in callback mode. onComplete receives
// the delivered result; it is never invoked when the request's token is
// cancelled before delivery.
//
// Calls run on the dispatcher's bounded group; Wait drains them.
func (d *Dispatcher) ExecuteAsync(req *Request, onComplete func(Result)) {
	d.async.Go(func() error {
		res, deliver := d.execute(req)
		if deliver && onComplete != nil {
			onComplete(res)
		}
		return nil
	})
}

// Wait blocks until every callback-mode call dispatched so far has
// completed or been cancelled.
func (d *Dispatcher) Wait() {
	_ = d.async.Wait()
}

// Await invokes the executor in sequential mode and blocks until the
// result is known. When req.Token is nil, the token registered for the
// calling unit of work (Run) guards the call.
//
// A token found already cancelled returns an explicit TYPE_CANCELLED
// result before any exchange is attempted. A cancellation observed while
// the call is in flight drops the outcome and returns the same
// TYPE_CANCELLED result; when the cancelled token is the one registered
// for the calling unit of work, the registration is cleared as well.
// An explicit token on the request never touches the task registration:
// the chain's own guard keeps protecting later calls.
func (d *Dispatcher) Await(ctx context.Context, req *Request) Result {
	fromTask := false
	if req.Token == nil {
		req.Token = d.taskToken(ctx)
		fromTask = req.Token != nil
	}

	if req.Token != nil && req.Token.Cancelled() {
		return Result{Err: cancelledErr(errors.STAGE_BEFORE_REQUEST)}
	}

	res, deliver := d.execute(req)
	if !deliver {
		if fromTask {
			d.clearTask(ctx)
		}
		return Result{Err: cancelledErr(errors.STAGE_REQUEST)}
	}
	return res
}

func cancelledErr(stage string) *errors.ApiError {
	return &errors.ApiError{
		Stage: stage,
		Type:  errors.TYPE_CANCELLED,
	}
}

type taskIdKey struct{}

// Run executes fn as one cancellable unit of work. The token is
// registered for the unit's lifetime: Await calls made with the returned
// ctx and no explicit token are guarded by it. The registration is
// removed on every exit path.
//
// Run never propagates fn's failure: a returned error or a panic is
// logged and reported as a false return value. True means fn completed
// normally.
func (d *Dispatcher) Run(token *Token, fn func(ctx context.Context) error) (ok bool) {
	id := uuid.NewString()

	d.mu.Lock()
	d.tasks[id] = token
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		delete(d.tasks, id)
		d.mu.Unlock()
	}()

	ctx := context.WithValue(context.Background(), taskIdKey{}, id)

	ok = true
	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorf("dispatch: task %s panicked: %v", id, r)
			ok = false
		}
	}()
	if err := fn(ctx); err != nil {
		d.logger.Errorf("dispatch: task %s failed: %v", id, err)
		ok = false
	}
	return ok
}

func (d *Dispatcher) taskToken(ctx context.Context) *Token {
	id, _ := ctx.Value(taskIdKey{}).(string)
	if id == "" {
		return nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tasks[id]
}

func (d *Dispatcher) clearTask(ctx context.Context) {
	id, _ := ctx.Value(taskIdKey{}).(string)
	if id == "" {
		return
	}

	d.mu.Lock()
	delete(d.tasks, id)
	d.mu.Unlock()
}
