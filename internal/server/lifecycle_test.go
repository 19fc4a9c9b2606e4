package server

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockService struct {
	started atomic.Bool
	stopped atomic.Bool
	startFn func(ctx context.Context) error
}

func (m *mockService) Start(ctx context.Context) error {
	m.started.Store(true)
	if m.startFn != nil {
		return m.startFn(ctx)
	}
	<-ctx.Done()
	return nil
}

func (m *mockService) Stop() {
	m.stopped.Store(true)
}

func TestLifecycleStartsAndStopsServices(t *testing.T) {
	logger := zaptest.NewLogger(t)
	lc := NewLifecycle(logger, time.Second)

	svc1 := &mockService{}
	svc2 := &mockService{}

	lc.Add("svc1", svc1)
	lc.Add("svc2", svc2)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- lc.Run(ctx)
	}()

	// Wait for services to start
	deadline := time.After(2 * time.Second)
	for {
		if svc1.started.Load() && svc2.started.Load() {
			break
		}
		select {
		case <-deadline:
			t.Fatal("services did not start in time")
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}

	// Trigger shutdown
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down in time")
	}

	assert.True(t, svc1.stopped.Load())
	assert.True(t, svc2.stopped.Load())
}

func TestLifecycleReturnsServiceError(t *testing.T) {
	logger := zaptest.NewLogger(t)
	lc := NewLifecycle(logger, time.Second)

	healthy := &mockService{}
	failing := &mockService{startFn: func(ctx context.Context) error {
		return errors.New("listen failed")
	}}

	lc.Add("healthy", healthy)
	lc.Add("failing", failing)

	err := lc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing")
	assert.Contains(t, err.Error(), "listen failed")
	assert.True(t, healthy.stopped.Load(), "surviving services must be stopped after a failure")
}

// A service whose Start loops on its context must observe shutdown
// without needing a Stop implementation, the way the database
// health-check loop does.
func TestLifecycleCancelsServiceContextOnShutdown(t *testing.T) {
	logger := zaptest.NewLogger(t)
	lc := NewLifecycle(logger, time.Second)

	loopExited := make(chan struct{})
	lc.Add("poller", &FuncService{
		StartFn: func(ctx context.Context) error {
			ticker := time.NewTicker(10 * time.Millisecond)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					close(loopExited)
					return nil
				case <-ticker.C:
				}
			}
		},
		StopFn: func() {},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- lc.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-loopExited:
	case <-time.After(2 * time.Second):
		t.Fatal("service loop did not observe shutdown")
	}

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("lifecycle did not shut down in time")
	}
}

// A Stop that hangs past the grace period must not block the rest of
// the shutdown sequence.
func TestLifecycleStopGraceBoundsHungStop(t *testing.T) {
	logger := zaptest.NewLogger(t)
	lc := NewLifecycle(logger, 50*time.Millisecond)

	fast := &mockService{}
	lc.Add("fast", fast)
	lc.Add("hung", &FuncService{
		StartFn: func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		},
		StopFn: func() {
			time.Sleep(2 * time.Second)
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- lc.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("shutdown blocked on a hung service stop")
	}
	// "hung" stops first (reverse order); "fast" must still be reached.
	assert.True(t, fast.stopped.Load())
}

func TestFuncService(t *testing.T) {
	started := false
	stopped := false

	svc := &FuncService{
		StartFn: func(ctx context.Context) error {
			started = true
			return nil
		},
		StopFn: func() {
			stopped = true
		},
	}

	err := svc.Start(context.Background())
	assert.NoError(t, err)
	assert.True(t, started)

	svc.Stop()
	assert.True(t, stopped)
}
