// Package server supervises the combat server's long-running
// components: it starts them together, cancels their shared context
// when shutdown begins, and stops them in reverse order so the gRPC
// surface drains before the storage it depends on goes away.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Service is a long-running component supervised by a Lifecycle.
type Service interface {
	// Start runs the service and blocks until it exits. The context is
	// cancelled when shutdown begins; loop-style services such as the
	// database health check should return nil once it is done.
	Start(ctx context.Context) error
	// Stop asks the service to shut down. Stop may block while the
	// service drains; the Lifecycle bounds the wait with its grace
	// period.
	Stop()
}

// FuncService adapts a start/stop function pair into the Service interface.
type FuncService struct {
	StartFn func(ctx context.Context) error
	StopFn  func()
}

// Start calls the underlying start function.
func (f *FuncService) Start(ctx context.Context) error { return f.StartFn(ctx) }

// Stop calls the underlying stop function.
func (f *FuncService) Stop() { f.StopFn() }

// Lifecycle manages the startup and shutdown of multiple services.
// Services are started in order and stopped in reverse order.
type Lifecycle struct {
	logger    *zap.Logger
	stopGrace time.Duration
	services  []namedService
	mu        sync.Mutex
}

type namedService struct {
	name    string
	service Service
}

// NewLifecycle creates a new Lifecycle manager. stopGrace bounds how
// long each service's Stop may block during shutdown; zero or negative
// waits indefinitely.
//
// Precondition: logger must be non-nil.
func NewLifecycle(logger *zap.Logger, stopGrace time.Duration) *Lifecycle {
	return &Lifecycle{
		logger:    logger,
		stopGrace: stopGrace,
	}
}

// Add registers a named service for lifecycle management.
// Services are started in the order they are added.
//
// Precondition: name must be non-empty; svc must be non-nil.
func (l *Lifecycle) Add(name string, svc Service) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.services = append(l.services, namedService{name: name, service: svc})
}

// Run starts all services and blocks until a termination signal arrives
// (SIGINT or SIGTERM), a service fails, or ctx is cancelled. Shutdown
// first cancels the context handed to every Start, then stops services
// in reverse order.
//
// Postcondition: every service has been asked to stop when Run returns;
// if a service failed, its error is returned.
func (l *Lifecycle) Run(ctx context.Context) error {
	start := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Start services
	errCh := make(chan error, len(l.services))
	for _, ns := range l.services {
		ns := ns
		go func() {
			l.logger.Info("starting service",
				zap.String("service", ns.name),
			)
			svcStart := time.Now()
			if err := ns.service.Start(ctx); err != nil {
				l.logger.Error("service failed",
					zap.String("service", ns.name),
					zap.Error(err),
					zap.Duration("uptime", time.Since(svcStart)),
				)
				errCh <- fmt.Errorf("service %s: %w", ns.name, err)
				cancel()
			}
		}()
	}

	l.logger.Info("all services started",
		zap.Int("count", len(l.services)),
		zap.Duration("startup", time.Since(start)),
	)

	// Wait for signal, service failure, or context cancellation
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var runErr error
	select {
	case sig := <-sigCh:
		l.logger.Info("received signal, shutting down",
			zap.String("signal", sig.String()),
		)
	case runErr = <-errCh:
		l.logger.Error("service error, shutting down",
			zap.Error(runErr),
		)
	case <-ctx.Done():
		l.logger.Info("context cancelled, shutting down")
		// A failing service cancels the context after reporting its
		// error; prefer that error over a bare cancellation.
		select {
		case runErr = <-errCh:
		default:
		}
	}

	// Unblock context-aware services, then stop the rest in reverse order
	cancel()
	l.shutdown()

	l.logger.Info("shutdown complete",
		zap.Duration("total_uptime", time.Since(start)),
	)
	return runErr
}

func (l *Lifecycle) shutdown() {
	shutdownStart := time.Now()
	for i := len(l.services) - 1; i >= 0; i-- {
		ns := l.services[i]
		svcStart := time.Now()
		l.logger.Info("stopping service",
			zap.String("service", ns.name),
		)
		if l.stopWithGrace(ns.service) {
			l.logger.Info("service stopped",
				zap.String("service", ns.name),
				zap.Duration("elapsed", time.Since(svcStart)),
			)
		} else {
			l.logger.Warn("service stop exceeded grace period",
				zap.String("service", ns.name),
				zap.Duration("grace", l.stopGrace),
			)
		}
	}
	l.logger.Info("all services stopped",
		zap.Duration("shutdown_elapsed", time.Since(shutdownStart)),
	)
}

// stopWithGrace runs svc.Stop, waiting at most the configured grace
// period. It reports whether Stop finished in time; a service that
// overruns is left to the process exit rather than blocking the
// remaining shutdown sequence.
func (l *Lifecycle) stopWithGrace(svc Service) bool {
	if l.stopGrace <= 0 {
		svc.Stop()
		return true
	}
	done := make(chan struct{})
	go func() {
		svc.Stop()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(l.stopGrace):
		return false
	}
}
