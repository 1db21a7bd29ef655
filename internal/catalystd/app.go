// Package catalystd wires the tool host binary: the Global API adapter, the
// tool registry/dispatcher, and the MCP transport chosen at startup.
package catalystd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/openearth/catalyst/internal/catalystd/globalapi"
	"github.com/openearth/catalyst/internal/catalystd/toolhost"
	"github.com/openearth/catalyst/internal/pkg/options"
	"github.com/openearth/catalyst/pkg/logger"
)

const Version = "0.1.0"

// Options bundles everything the tool host binary needs.
type Options struct {
	API   *options.GlobalAPIOptions `mapstructure:"api"`
	Serve *options.ServeOptions     `mapstructure:"serve"`

	ConfigFile string `mapstructure:"-"`
	Verbose    bool   `mapstructure:"verbose"`
}

func NewOptions() *Options {
	return &Options{
		API:   options.NewGlobalAPIOptions(),
		Serve: options.NewServeOptions(),
	}
}

func (o *Options) Validate() []error {
	var errs []error
	errs = append(errs, o.API.Validate()...)
	errs = append(errs, o.Serve.Validate()...)
	return errs
}

// NewCommand creates the catalystd root command.
func NewCommand() *cobra.Command {
	o := NewOptions()

	cmd := &cobra.Command{
		Use:   "catalystd",
		Short: "catalystd exposes CityCatalyst Global API lookups as MCP tools",
		Long: heredoc.Doc(`
			catalystd is the CityCatalyst tool host. It advertises a fixed set of
			read-only Global API lookups (emissions, city boundaries, datasource
			catalogue) as MCP tools and dispatches incoming tool calls against the
			remote service.

			By default it serves over stdio so a chat client can run it as a
			subprocess; pass --serve.transport=sse to listen on HTTP instead.
		`),
		Example: heredoc.Doc(`
			# Serve over stdio (the default, for subprocess clients)
			catalystd

			# Serve over HTTP SSE
			catalystd --serve.transport=sse --serve.addr=127.0.0.1:11700

			# Point at a different Global API deployment
			catalystd --api.base-url=https://ccglobal.example.org

			# Load settings from a file; explicit flags still win
			catalystd --config ./catalystd.yaml
		`),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := options.LoadConfigFile(o.ConfigFile, cmd.Flags(), o); err != nil {
				return err
			}
			if errs := o.Validate(); len(errs) > 0 {
				return fmt.Errorf("invalid options: %v", errs)
			}
			return Run(o)
		},
	}

	fs := cmd.Flags()
	o.API.AddFlags(fs)
	o.Serve.AddFlags(fs)
	fs.StringVar(&o.ConfigFile, "config", "", "Path to an optional config file; flags override file values.")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "Enable debug logging.")

	return cmd
}

// Run builds the tool host and serves until the transport shuts down.
func Run(o *Options) error {
	logger.SetVerbose(o.Verbose)

	api := globalapi.New(o.API.BaseURL, o.API.Timeout)
	registry := toolhost.NewRegistry(api)
	dispatcher := toolhost.NewDispatcher(registry)
	srv := toolhost.NewMCPServer(registry, dispatcher, Version)

	names := make([]string, 0, len(registry.List()))
	for _, def := range registry.List() {
		names = append(names, def.Name)
	}
	logger.Info("[catalystd] api base URL: %s", api.BaseURL())
	logger.Info("[catalystd] available tools: %v", names)

	switch o.Serve.Transport {
	case options.TransportSSE:
		return toolhost.ServeSSE(srv, o.Serve.Addr)
	default:
		return toolhost.ServeStdio(srv)
	}
}
