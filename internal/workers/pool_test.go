package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chronois/avrora/internal/log"
	"github.com/stretchr/testify/require"
)

func TestPool_DoReturnsResult(t *testing.T) {
	p := New(2, log.NopLogger{})
	want := errors.New("boom")

	require.NoError(t, p.Do(context.Background(), func(context.Context) error { return nil }))
	require.ErrorIs(t, p.Do(context.Background(), func(context.Context) error { return want }), want)
}

func TestPool_DefaultSize(t *testing.T) {
	require.Equal(t, DefaultSize, New(0, nil).Size())
}

func TestPool_BoundsConcurrency(t *testing.T) {
	p := New(2, log.NopLogger{})

	var running, peak int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(context.Background(), func(context.Context) error {
				n := atomic.AddInt32(&running, 1)
				for {
					old := atomic.LoadInt32(&peak)
					if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	require.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestPool_RecoversPanic(t *testing.T) {
	p := New(1, log.NopLogger{})

	err := p.Do(context.Background(), func(context.Context) error { panic("bad") })
	require.ErrorContains(t, err, "worker panic: bad")

	// The slot was released.
	require.NoError(t, p.Do(context.Background(), func(context.Context) error { return nil }))
}

func TestPool_ContextCancelled(t *testing.T) {
	p := New(1, log.NopLogger{})
	ctx, cancel := context.WithCancel(context.Background())

	release := make(chan struct{})
	go func() {
		_ = p.Do(context.Background(), func(context.Context) error {
			<-release
			return nil
		})
	}()
	time.Sleep(10 * time.Millisecond)

	cancel()
	err := p.Do(ctx, func(context.Context) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
	close(release)
}
