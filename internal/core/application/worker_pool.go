package application

import (
	"context"
	"fmt"
	"time"

	"github.com/vulpemventures/noir/internal/core/ports"
	"golang.org/x/sync/semaphore"
)

// workerPool bounds the number of CPU-heavy jobs (PBKDF2, EC multiplications)
// running at the same time.
type workerPool struct {
	sem     *semaphore.Weighted
	size    int
	timeout time.Duration
	metrics ports.Metrics
}

func newWorkerPool(
	size int, timeout time.Duration, metrics ports.Metrics,
) *workerPool {
	return &workerPool{
		sem:     semaphore.NewWeighted(int64(size)),
		size:    size,
		timeout: timeout,
		metrics: metrics,
	}
}

// runJob executes the job in the pool and waits for its result, unless the
// context is done first. In that case the late result, if any, is handed to
// discard so that it can release any sensitive material it holds.
// Panics raised by the job are recovered and returned as ErrInternal.
func runJob[T any](
	ctx context.Context, p *workerPool, method string,
	job func() (T, error), discard func(T),
) (T, error) {
	var zero T

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.sem.Acquire(ctx, 1); err != nil {
		p.metrics.RequestRejected(method)
		return zero, fmt.Errorf("%w: %s", ErrRequestCancelled, err)
	}

	start := time.Now()
	p.metrics.RequestStarted(method)

	type outcome struct {
		result T
		err    error
	}
	chOutcome := make(chan outcome, 1)

	go func() {
		defer p.sem.Release(1)
		defer func() {
			if r := recover(); r != nil {
				chOutcome <- outcome{err: fmt.Errorf("%w: %v", ErrInternal, r)}
			}
		}()

		result, err := job()
		chOutcome <- outcome{result, err}
	}()

	select {
	case out := <-chOutcome:
		p.metrics.RequestFinished(method, out.err == nil, time.Since(start))
		return out.result, out.err
	case <-ctx.Done():
		p.metrics.RequestFinished(method, false, time.Since(start))
		go func() {
			if out := <-chOutcome; out.err == nil && discard != nil {
				discard(out.result)
			}
		}()
		return zero, fmt.Errorf("%w: %s", ErrRequestCancelled, ctx.Err())
	}
}
