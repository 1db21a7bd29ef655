package options

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

type hostOptions struct {
	API   *GlobalAPIOptions `mapstructure:"api"`
	Serve *ServeOptions     `mapstructure:"serve"`
}

func newHostFlags(t *testing.T) (*hostOptions, *pflag.FlagSet) {
	t.Helper()
	o := &hostOptions{
		API:   NewGlobalAPIOptions(),
		Serve: NewServeOptions(),
	}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o.API.AddFlags(fs)
	o.Serve.AddFlags(fs)
	return o, fs
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFileAppliesFileValues(t *testing.T) {
	o, fs := newHostFlags(t)
	path := writeConfigFile(t, `
api:
  base-url: https://ccglobal.example.org
  timeout: 15s
serve:
  transport: sse
  addr: 127.0.0.1:9999
`)

	if err := LoadConfigFile(path, fs, o); err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}
	if o.API.BaseURL != "https://ccglobal.example.org" {
		t.Fatalf("base URL = %q", o.API.BaseURL)
	}
	if o.API.Timeout != 15*time.Second {
		t.Fatalf("timeout = %s", o.API.Timeout)
	}
	if o.Serve.Transport != TransportSSE || o.Serve.Addr != "127.0.0.1:9999" {
		t.Fatalf("serve = %+v", o.Serve)
	}
}

func TestLoadConfigFileFlagsOverrideFile(t *testing.T) {
	o, fs := newHostFlags(t)
	path := writeConfigFile(t, `
api:
  base-url: https://from-file.example.org
  timeout: 15s
`)

	if err := fs.Set("api.timeout", "5s"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := LoadConfigFile(path, fs, o); err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	// An explicitly set flag wins; a flag left at its default takes the
	// file value.
	if o.API.Timeout != 5*time.Second {
		t.Fatalf("timeout = %s, want the flag value", o.API.Timeout)
	}
	if o.API.BaseURL != "https://from-file.example.org" {
		t.Fatalf("base URL = %q, want the file value", o.API.BaseURL)
	}
}

func TestLoadConfigFileEmptyPathKeepsDefaults(t *testing.T) {
	o, fs := newHostFlags(t)
	want := o.API.BaseURL

	if err := LoadConfigFile("", fs, o); err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}
	if o.API.BaseURL != want || o.Serve.Transport != TransportStdio {
		t.Fatalf("defaults disturbed: %+v / %+v", o.API, o.Serve)
	}
}

func TestLoadConfigFileMissingFileFails(t *testing.T) {
	o, fs := newHostFlags(t)
	if err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"), fs, o); err == nil {
		t.Fatal("missing config file accepted")
	}
}
