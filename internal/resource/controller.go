package resource

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when a single request is larger than
// the memory limit and can never be satisfied.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Config holds resource limits. Zero fields mean unlimited.
type Config struct {
	// MemoryLimitBytes bounds the snapshot bytes held in flight.
	MemoryLimitBytes int64

	// IOLimitBytesPerSec bounds the transfer throughput.
	IOLimitBytesPerSec int64
}

// Controller hands out memory reservations and I/O tokens.
type Controller struct {
	limit    int64
	budget   *semaphore.Weighted // nil if unlimited
	throttle *rate.Limiter       // nil if unlimited
}

// NewController returns a Controller enforcing cfg. The I/O burst is one
// second of throughput.
func NewController(cfg Config) *Controller {
	c := &Controller{limit: cfg.MemoryLimitBytes}
	if cfg.MemoryLimitBytes > 0 {
		c.budget = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}
	if perSec := cfg.IOLimitBytesPerSec; perSec > 0 {
		c.throttle = rate.NewLimiter(rate.Limit(perSec), int(min(perSec, math.MaxInt32)))
	}
	return c
}

func noop() {}

// Reserve blocks until n bytes fit into the memory budget or ctx is done.
// The returned release func gives the bytes back; it must be called
// exactly once.
func (c *Controller) Reserve(ctx context.Context, n int64) (release func(), err error) {
	if c == nil || c.budget == nil {
		return noop, ctx.Err()
	}
	if n > c.limit {
		return nil, fmt.Errorf("%w: request %d > limit %d", ErrMemoryLimitExceeded, n, c.limit)
	}
	if err := c.budget.Acquire(ctx, n); err != nil {
		return nil, err
	}
	return func() { c.budget.Release(n) }, nil
}

// Throttle waits until the I/O limit admits n bytes. Requests larger than
// the burst are admitted in burst-sized chunks.
func (c *Controller) Throttle(ctx context.Context, n int) error {
	if c == nil || c.throttle == nil {
		return ctx.Err()
	}
	burst := c.throttle.Burst()
	for n > 0 {
		chunk := min(n, burst)
		if err := c.throttle.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
