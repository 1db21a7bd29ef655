package mcp

import "testing"

func TestManagerReportsConfiguredHosts(t *testing.T) {
	cfg := &Config{MCPServers: map[string]*ServerConfig{
		"globalapi": {Transport: "stdio", Command: "catalystd"},
		"remote":    {Transport: "sse", URL: "http://127.0.0.1:11700/sse"},
	}}
	m := NewManager(cfg)

	names := m.ServerNames()
	if len(names) != 2 {
		t.Fatalf("ServerNames = %v, want 2 hosts", names)
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	if !seen["globalapi"] || !seen["remote"] {
		t.Fatalf("ServerNames = %v", names)
	}

	for _, name := range names {
		if got := m.ServerStatus(name); got != StatusDisconnected {
			t.Fatalf("host %q status = %s before connect", name, got)
		}
	}
	if got := m.ServerStatus("never-configured"); got != StatusDisconnected {
		t.Fatalf("unknown host status = %s", got)
	}

	if tools := m.Tools(); len(tools) != 0 {
		t.Fatalf("disconnected manager advertised %d tools", len(tools))
	}
}

func TestServerStatusStrings(t *testing.T) {
	cases := map[ServerStatus]string{
		StatusDisconnected: "Disconnected",
		StatusConnecting:   "Connecting",
		StatusConnected:    "Connected",
		StatusError:        "Error",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", status, got, want)
		}
	}
}
