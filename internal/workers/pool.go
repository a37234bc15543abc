// Package workers runs blocking collaborator calls on a bounded pool so the
// interactive loop never does the blocking itself.
package workers

import (
	"context"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/semaphore"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
)

// DefaultSize is the number of calls that may block at the same time.
const DefaultSize = 4

// Pool limits concurrent blocking work.
type Pool struct {
	sem  *semaphore.Weighted
	size int
	log  domain.Logger
}

// New returns a pool with size slots. size <= 0 means DefaultSize.
func New(size int, logger domain.Logger) *Pool {
	if size <= 0 {
		size = DefaultSize
	}
	return &Pool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: size,
		log:  log.Named(logger, "workers"),
	}
}

// Size returns the number of slots.
func (p *Pool) Size() int {
	return p.size
}

// Do runs fn on a worker and waits for it. If ctx ends first Do returns
// ctx.Err(); fn keeps its slot until it returns. A panic in fn is returned
// as an error.
func (p *Pool) Do(ctx context.Context, fn func(context.Context) error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		defer p.sem.Release(1)
		defer func() {
			if r := recover(); r != nil {
				p.log.Error("panic in worker: %v\n%s", r, debug.Stack())
				done <- fmt.Errorf("worker panic: %v", r)
			}
		}()
		done <- fn(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ domain.Runner = (*Pool)(nil)
