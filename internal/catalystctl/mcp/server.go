package mcp

import (
	"context"
	"fmt"
	"sync"

	mcpTool "github.com/cloudwego/eino-ext/components/tool/mcp"
	"github.com/cloudwego/eino/components/tool"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/openearth/catalyst/pkg/logger"
)

// ServerStatus is the connection state of a tool host.
type ServerStatus int

const (
	StatusDisconnected ServerStatus = iota
	StatusConnecting
	StatusConnected
	StatusError
)

func (s ServerStatus) String() string {
	switch s {
	case StatusDisconnected:
		return "Disconnected"
	case StatusConnecting:
		return "Connecting"
	case StatusConnected:
		return "Connected"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Server is one connected tool host and the tools it contributed.
type Server struct {
	name   string
	config *ServerConfig

	mu     sync.RWMutex
	client client.MCPClient
	tools  []tool.BaseTool
	status ServerStatus
	err    error
}

func NewServer(name string, cfg *ServerConfig) *Server {
	return &Server{
		name:   name,
		config: cfg,
		status: StatusDisconnected,
	}
}

func (s *Server) Name() string {
	return s.name
}

func (s *Server) Status() ServerStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Tools returns the discovered tools, empty while disconnected.
func (s *Server) Tools() []tool.BaseTool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]tool.BaseTool, len(s.tools))
	copy(out, s.tools)
	return out
}

// Connect establishes the MCP session and discovers the host's tools.
func (s *Server) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusConnecting
	s.err = nil

	cli, err := s.createClient()
	if err != nil {
		s.status = StatusError
		s.err = err
		return fmt.Errorf("tool host %q: create client: %w", s.name, err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    "catalystctl",
		Version: "0.1.0",
	}

	if _, err := cli.Initialize(ctx, initReq); err != nil {
		s.status = StatusError
		s.err = err
		return fmt.Errorf("tool host %q: initialize: %w", s.name, err)
	}

	tools, err := mcpTool.GetTools(ctx, &mcpTool.Config{
		Cli:          cli,
		ToolNameList: s.config.ToolFilter,
	})
	if err != nil {
		s.status = StatusError
		s.err = err
		return fmt.Errorf("tool host %q: discover tools: %w", s.name, err)
	}

	s.client = cli
	s.tools = tools
	s.status = StatusConnected

	logger.Info("[mcp] tool host %q connected, %d tools", s.name, len(tools))
	return nil
}

// Close tears the session down and drops the discovered tools.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		if err := s.client.Close(); err != nil {
			logger.Warn("[mcp] tool host %q: close: %v", s.name, err)
		}
		s.client = nil
	}
	s.tools = nil
	s.status = StatusDisconnected
	s.err = nil
}

// createClient builds the transport-specific client. Caller holds s.mu.
func (s *Server) createClient() (client.MCPClient, error) {
	switch s.config.Transport {
	case "stdio":
		return client.NewStdioMCPClient(s.config.Command, s.config.Env, s.config.Args...)
	case "sse":
		return client.NewSSEMCPClient(s.config.URL)
	default:
		return nil, fmt.Errorf("unknown transport: %s", s.config.Transport)
	}
}
