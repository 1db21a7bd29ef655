package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// ServeOptions picks the tool host transport. The tool contract is the same
// over both; only the framing differs.
type ServeOptions struct {
	// Transport is "stdio" (subprocess pipes, default) or "sse" (HTTP).
	Transport string `json:"transport" mapstructure:"transport"`

	// Addr is the listen address for the sse transport.
	Addr string `json:"addr" mapstructure:"addr"`
}

func NewServeOptions() *ServeOptions {
	return &ServeOptions{
		Transport: TransportStdio,
		Addr:      "127.0.0.1:11700",
	}
}

func (o *ServeOptions) Validate() []error {
	var errs []error
	switch o.Transport {
	case TransportStdio:
	case TransportSSE:
		if o.Addr == "" {
			errs = append(errs, fmt.Errorf("serve.addr is required for the sse transport"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported transport %q (must be %q or %q)",
			o.Transport, TransportStdio, TransportSSE))
	}
	return errs
}

func (o *ServeOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Transport, "serve.transport", o.Transport, "Tool host transport: 'stdio' or 'sse'.")
	fs.StringVar(&o.Addr, "serve.addr", o.Addr, "Listen address for the sse transport (host:port).")
}
