package mcp

import (
	"fmt"
	"os"

	"github.com/openearth/catalyst/pkg/utils/json"
)

// Config holds the tool host connections for the chat client.
//
// File format (mcp.json, Claude Desktop compatible):
//
//	{
//	  "mcpServers": {
//	    "globalapi": {
//	      "transport": "stdio",
//	      "command": "catalystd"
//	    }
//	  }
//	}
type Config struct {
	MCPServers map[string]*ServerConfig `json:"mcpServers"`
}

// ServerConfig defines one tool host. Two transports are supported:
// "stdio" (subprocess) and "sse" (HTTP SSE).
type ServerConfig struct {
	// Transport is "stdio" (default) or "sse".
	Transport string `json:"transport,omitempty"`

	// Command is the executable to launch (stdio only), e.g. "catalystd".
	Command string `json:"command,omitempty"`

	// Args are the command-line arguments (stdio only).
	Args []string `json:"args,omitempty"`

	// Env is the subprocess environment, "KEY=VALUE" entries (stdio only).
	Env []string `json:"env,omitempty"`

	// URL is the SSE endpoint (sse only), e.g. "http://127.0.0.1:11700/sse".
	URL string `json:"url,omitempty"`

	// ToolFilter optionally restricts which tools the host contributes.
	ToolFilter []string `json:"toolFilter,omitempty"`
}

// LoadConfig reads path. A missing file yields the default config: a single
// "globalapi" host running catalystd as a stdio subprocess.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read mcp config %q: %w", path, err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse mcp config %q: %w", path, err)
	}
	if cfg.MCPServers == nil {
		cfg.MCPServers = make(map[string]*ServerConfig)
	}
	return cfg, nil
}

// DefaultConfig points at a local catalystd over stdio.
func DefaultConfig() *Config {
	return &Config{
		MCPServers: map[string]*ServerConfig{
			"globalapi": {
				Transport: "stdio",
				Command:   "catalystd",
			},
		},
	}
}

// Validate checks the config for obvious mistakes and fills transport
// defaults in place.
func (c *Config) Validate() []error {
	var errs []error
	for name, srv := range c.MCPServers {
		if srv.Transport == "" {
			srv.Transport = "stdio"
		}
		switch srv.Transport {
		case "stdio":
			if srv.Command == "" {
				errs = append(errs, fmt.Errorf("mcpServers.%s: command is required for stdio transport", name))
			}
		case "sse":
			if srv.URL == "" {
				errs = append(errs, fmt.Errorf("mcpServers.%s: url is required for sse transport", name))
			}
		default:
			errs = append(errs, fmt.Errorf("mcpServers.%s: unsupported transport %q (must be 'stdio' or 'sse')", name, srv.Transport))
		}
	}
	return errs
}
