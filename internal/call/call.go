package call

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// State is where an operation is in its lifecycle.
type State int

const (
	Idle State = iota
	InFlight
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFlight:
		return "in-flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status is a snapshot of an operation's request state.
type Status struct {
	Loading bool
	Err     string // empty when the last call did not fail
	state   State
}

// State derives the lifecycle state of the snapshot.
func (s Status) State() State { return s.state }

// Func is the operation being wrapped.
type Func[In, Out any] func(ctx context.Context, in In) (Out, error)

// Call runs Func and publishes its status. Safe for concurrent use.
type Call[In, Out any] struct {
	fn  Func[In, Out]
	log *zap.Logger

	mu     sync.Mutex
	status Status
}

// New wraps fn under name, which is used in logs only.
func New[In, Out any](name string, fn func(context.Context, In) (Out, error), log *zap.Logger) *Call[In, Out] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Call[In, Out]{fn: fn, log: log.With(zap.String("op", name))}
}

// Status returns the latest status.
func (c *Call[In, Out]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Loading reports whether a call is in flight.
func (c *Call[In, Out]) Loading() bool { return c.Status().Loading }

// Execute invokes the operation. On failure the error message is captured in
// the status and ok is false; the error itself is also returned for callers
// that want to classify it.
func (c *Call[In, Out]) Execute(ctx context.Context, in In) (out Out, ok bool, err error) {
	c.set(Status{Loading: true, state: InFlight})

	start := time.Now()
	out, err = c.fn(ctx, in)
	if err != nil {
		c.set(Status{Err: err.Error(), state: Failed})
		c.log.Debug("call failed", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		var zero Out
		return zero, false, err
	}
	c.set(Status{state: Succeeded})
	c.log.Debug("call succeeded", zap.Duration("elapsed", time.Since(start)))
	return out, true, nil
}

// Reset returns the status to idle.
func (c *Call[In, Out]) Reset() { c.set(Status{}) }

func (c *Call[In, Out]) set(s Status) {
	c.mu.Lock()
	c.status = s
	c.mu.Unlock()
}
