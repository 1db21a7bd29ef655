package toolhost

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openearth/catalyst/pkg/logger"
)

const serverName = "CityCatalyst Global API"

// NewMCPServer wraps the Registry and Dispatcher in an MCP server. The wire
// framing (stdio or SSE) is chosen by the Serve* helpers; the tool contract
// is identical across transports.
func NewMCPServer(registry *Registry, dispatcher *Dispatcher, version string) *server.MCPServer {
	s := server.NewMCPServer(serverName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for _, def := range registry.List() {
		s.AddTool(toMCPTool(def), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			logger.Debug("[toolhost] tool called: %s", def.Name)
			res := dispatcher.Invoke(ctx, def.Name, Arguments(req.GetArguments()))
			if res.IsError {
				return mcp.NewToolResultError(res.Content), nil
			}
			return mcp.NewToolResultText(res.Content), nil
		})
	}

	return s
}

func toMCPTool(def *Definition) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}
	for _, p := range def.Params {
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		switch p.Type {
		case TypeBoolean:
			opts = append(opts, mcp.WithBoolean(p.Name, propOpts...))
		case TypeInteger:
			opts = append(opts, mcp.WithNumber(p.Name, propOpts...))
		default:
			opts = append(opts, mcp.WithString(p.Name, propOpts...))
		}
	}
	return mcp.NewTool(def.Name, opts...)
}

// ServeStdio serves the tool host over stdin/stdout until the client hangs up.
func ServeStdio(s *server.MCPServer) error {
	logger.Info("[toolhost] serving over stdio")
	return server.ServeStdio(s)
}

// ServeSSE serves the tool host over HTTP SSE on addr (host:port).
func ServeSSE(s *server.MCPServer, addr string) error {
	logger.Info("[toolhost] serving over SSE on %s", addr)
	sse := server.NewSSEServer(s)
	if err := sse.Start(addr); err != nil {
		return fmt.Errorf("sse server: %w", err)
	}
	return nil
}
