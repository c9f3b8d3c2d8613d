package merchant

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultSlotTime = 5 * time.Second
	DefaultMaxTime  = 60 * time.Second

	maxRetryExponent = 30
)

type RetryOption func(*retryConfig)

type retryConfig struct {
	slot  time.Duration
	max   time.Duration
	out   io.Writer
	timer backoff.Timer
	randn func(n int64) int64
}

func WithSlotTime(d time.Duration) RetryOption {
	return func(c *retryConfig) { c.slot = d }
}

func WithMaxTime(d time.Duration) RetryOption {
	return func(c *retryConfig) { c.max = d }
}

// WithRetryOutput sets where retry notices are printed. Defaults to stdout.
func WithRetryOutput(w io.Writer) RetryOption {
	return func(c *retryConfig) { c.out = w }
}

// slottedBackOff waits a random number of slots before each retry, doubling
// the range every attempt, and stops once the total wait reaches max.
type slottedBackOff struct {
	slot    time.Duration
	max     time.Duration
	randn   func(n int64) int64
	waited  time.Duration
	attempt int
}

func (b *slottedBackOff) NextBackOff() time.Duration {
	if b.waited >= b.max {
		return backoff.Stop
	}
	exp := b.attempt
	if exp > maxRetryExponent {
		exp = maxRetryExponent
	}
	sleep := time.Duration(b.randn(int64(1)<<exp)) * b.slot
	if b.waited+sleep > b.max {
		sleep = b.max - b.waited
	}
	b.waited += sleep
	b.attempt++
	return sleep
}

func (b *slottedBackOff) Reset() {
	b.waited = 0
	b.attempt = 0
}

// RetryRequest calls op until it succeeds, retrying only on API errors. Any
// other error is returned immediately. Once the accumulated wait reaches the
// maximum, the last API error is returned.
func RetryRequest[T any](ctx context.Context, op func(context.Context) (T, error), opts ...RetryOption) (T, error) {
	cfg := &retryConfig{
		slot:  DefaultSlotTime,
		max:   DefaultMaxTime,
		out:   os.Stdout,
		randn: rand.Int63n,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	policy := &slottedBackOff{slot: cfg.slot, max: cfg.max, randn: cfg.randn}
	operation := func() (T, error) {
		res, err := op(ctx)
		if err != nil && !IsAPIError(err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}
	notify := func(_ error, d time.Duration) {
		fmt.Fprintf(cfg.out, "Request failed, trying again after %.2f seconds.\n", d.Seconds())
	}
	return backoff.RetryNotifyWithTimerAndData(operation, backoff.WithContext(policy, ctx), notify, cfg.timer)
}
