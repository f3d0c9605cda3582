package engine

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrRateLimited is returned by a non-blocking RateLimitedProvider when no
// request slot is available.
var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimitedProvider wraps a Provider with a per-minute token bucket.
type RateLimitedProvider struct {
	provider Provider
	rpm      int
	block    bool

	mu       sync.Mutex
	tokens   float64
	lastFill time.Time
	now      func() time.Time
}

// NewRateLimitedProvider wraps provider so that at most rpm generations run
// per minute. When block is true callers wait for a slot (until ctx is done);
// otherwise they get ErrRateLimited immediately. rpm <= 0 disables limiting
// and returns provider unchanged.
func NewRateLimitedProvider(provider Provider, rpm int, block bool) Provider {
	if rpm <= 0 {
		return provider
	}
	return &RateLimitedProvider{
		provider: provider,
		rpm:      rpm,
		block:    block,
		tokens:   float64(rpm),
		lastFill: time.Now(),
		now:      time.Now,
	}
}

func (r *RateLimitedProvider) Name() string {
	return r.provider.Name()
}

func (r *RateLimitedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if r.block {
		if err := r.wait(ctx); err != nil {
			return nil, err
		}
	} else if !r.take() {
		return nil, ErrRateLimited
	}
	return r.provider.Generate(ctx, req)
}

// take refills the bucket for the elapsed time and consumes one token if
// one is available.
func (r *RateLimitedProvider) take() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	elapsed := now.Sub(r.lastFill)
	r.lastFill = now
	r.tokens += elapsed.Minutes() * float64(r.rpm)
	if limit := float64(r.rpm); r.tokens > limit {
		r.tokens = limit
	}

	if r.tokens < 1 {
		return false
	}
	r.tokens--
	return true
}

func (r *RateLimitedProvider) wait(ctx context.Context) error {
	for !r.take() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
	return nil
}
