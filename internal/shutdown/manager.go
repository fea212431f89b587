package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"quizdeck/internal/logger"
)

// Shutdownable is implemented by components that hold goroutines or other
// resources needing an orderly stop.
type Shutdownable interface {
	Shutdown()
}

type registration struct {
	name      string
	component Shutdownable
}

// Manager coordinates application shutdown: it listens for signals and
// stops registered components in reverse registration order.
type Manager struct {
	registrations []registration
	logger        logger.Logger
	mu            sync.Mutex
	done          chan struct{}
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewManager creates a shutdown manager.
func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger: log,
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register adds a named component to the shutdown sequence.
func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.registrations = append(m.registrations, registration{name: name, component: component})
}

// Listen starts watching for termination signals.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
	}()
}

// Shutdown runs the shutdown sequence once; later calls are no-ops.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return // Already shutting down
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.registrations),
	})

	m.cancel()

	for i := len(m.registrations) - 1; i >= 0; i-- {
		reg := m.registrations[i]

		done := make(chan struct{})
		go func() {
			defer close(done)
			reg.component.Shutdown()
		}()

		select {
		case <-done:
			m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{
				"component": reg.name,
			})
		case <-time.After(10 * time.Second):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": reg.name,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

// Context is cancelled when shutdown begins.
func (m *Manager) Context() context.Context {
	return m.ctx
}

// Done is closed when shutdown begins.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
