package adapter

import (
	"context"
	"errors"
	"time"

	m "github.com/mouse-blink/versecheck/internal/model"
)

// Sleeper blocks for d. Tests substitute a recorder for time.Sleep.
type Sleeper func(d time.Duration)

// RetryPolicy bounds how often an operation is retried.
//
// Ordinary failures consume one of MaxAttempts and are followed by Delay.
// Failures matching m.ErrRateLimited are followed by RateLimitDelay and do
// not consume an attempt, up to MaxRateLimited times; beyond that they
// count like any other failure.
type RetryPolicy struct {
	MaxAttempts    int
	Delay          time.Duration
	RateLimitDelay time.Duration
	MaxRateLimited int
	Sleep          Sleeper
}

// DefaultRetryPolicy returns the policy used against the public reference API.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		Delay:          1500 * time.Millisecond,
		RateLimitDelay: 2 * time.Second,
		MaxRateLimited: 5,
		Sleep:          time.Sleep,
	}
}

// RetryResult is the tagged outcome of RetryPolicy.Do.
type RetryResult struct {
	Attempts    int   // calls counted against MaxAttempts, including a final success
	RateLimited int   // calls rejected with a rate limit and retried for free
	Err         error // nil on success, otherwise the last failure
}

// Exhausted reports whether every permitted attempt failed.
func (r RetryResult) Exhausted() bool {
	return r.Err != nil
}

// Do runs op until it succeeds or the policy gives up.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) error) RetryResult {
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	var res RetryResult

	for {
		err := op(ctx)
		if err == nil {
			res.Attempts++
			res.Err = nil

			return res
		}

		res.Err = err

		// Don't retry if context is already cancelled.
		if ctx.Err() != nil {
			res.Attempts++
			return res
		}

		if errors.Is(err, m.ErrRateLimited) && res.RateLimited < p.MaxRateLimited {
			res.RateLimited++
			p.sleep(p.RateLimitDelay)

			continue
		}

		res.Attempts++
		if res.Attempts >= maxAttempts {
			return res
		}

		p.sleep(p.Delay)
	}
}

func (p RetryPolicy) sleep(d time.Duration) {
	if d <= 0 {
		return
	}

	if p.Sleep == nil {
		time.Sleep(d)
		return
	}

	p.Sleep(d)
}
