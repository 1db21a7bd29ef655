// Package mcp manages the chat client's connections to MCP tool hosts and
// aggregates the tools they advertise.
package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/cloudwego/eino/components/tool"

	"github.com/openearth/catalyst/pkg/logger"
	"github.com/openearth/catalyst/pkg/utils/safego"
)

// Manager connects to the configured tool hosts and exposes their combined
// tool list to the conversation loop.
type Manager interface {
	// Initialize connects to every configured host.
	Initialize(ctx context.Context) error

	// Tools returns all tools from connected hosts, in config order.
	Tools() []tool.BaseTool

	// ServerNames returns the configured host names in config order.
	ServerNames() []string

	// ServerStatus returns the connection state of one host.
	ServerStatus(name string) ServerStatus

	// Close closes every host connection.
	Close() error
}

type manager struct {
	mu      sync.RWMutex
	servers map[string]*Server
	order   []string // preserves config order
}

var _ Manager = (*manager)(nil)

// NewManager builds a Manager over the given config.
func NewManager(cfg *Config) Manager {
	m := &manager{
		servers: make(map[string]*Server, len(cfg.MCPServers)),
		order:   make([]string, 0, len(cfg.MCPServers)),
	}
	for name, srvCfg := range cfg.MCPServers {
		m.servers[name] = NewServer(name, srvCfg)
		m.order = append(m.order, name)
	}
	return m
}

// Initialize connects to all hosts concurrently. A single host failing does
// not stop the others; only all hosts failing is an error.
func (m *manager) Initialize(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.servers) == 0 {
		logger.Info("[mcp] no tool hosts configured")
		return nil
	}

	var wg sync.WaitGroup
	var errMu sync.Mutex
	var errs []error

	for _, srv := range m.servers {
		wg.Add(1)
		s := srv
		safego.Go(ctx, func() {
			defer wg.Done()
			if err := s.Connect(ctx); err != nil {
				errMu.Lock()
				errs = append(errs, err)
				errMu.Unlock()
				logger.Warn("[mcp] tool host %q failed to connect: %v", s.Name(), err)
			}
		})
	}
	wg.Wait()

	connected := 0
	for _, srv := range m.servers {
		if srv.Status() == StatusConnected {
			connected++
		}
	}
	logger.Info("[mcp] %d/%d tool hosts connected", connected, len(m.servers))

	if len(errs) > 0 && connected == 0 {
		return fmt.Errorf("all tool hosts failed to connect (%d errors)", len(errs))
	}
	return nil
}

func (m *manager) Tools() []tool.BaseTool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var all []tool.BaseTool
	for _, name := range m.order {
		srv := m.servers[name]
		if srv.Status() == StatusConnected {
			all = append(all, srv.Tools()...)
		}
	}
	return all
}

func (m *manager) ServerNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

func (m *manager) ServerStatus(name string) ServerStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	srv, ok := m.servers[name]
	if !ok {
		return StatusDisconnected
	}
	return srv.Status()
}

func (m *manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, srv := range m.servers {
		srv.Close()
	}
	logger.Info("[mcp] all tool hosts closed")
	return nil
}
