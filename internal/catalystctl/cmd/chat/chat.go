// Package chat implements `catalystctl chat`: tool discovery, model setup,
// and the interactive conversation surface.
package chat

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/openearth/catalyst/internal/catalystctl/agent"
	"github.com/openearth/catalyst/internal/catalystctl/llm"
	"github.com/openearth/catalyst/internal/catalystctl/mcp"
	"github.com/openearth/catalyst/internal/pkg/options"
	"github.com/openearth/catalyst/pkg/logger"
)

// ChatOptions holds everything the chat subcommand needs.
type ChatOptions struct {
	Model *options.ModelOptions `mapstructure:"model"`

	ConfigFile    string        `mapstructure:"-"`
	MCPConfigFile string        `mapstructure:"mcp-config"`
	MaxTurns      int           `mapstructure:"max-turns"`
	ToolTimeout   time.Duration `mapstructure:"tool-timeout"`
	Verbose       bool          `mapstructure:"verbose"`
}

func NewChatOptions() *ChatOptions {
	return &ChatOptions{
		Model:         options.NewModelOptions(),
		MCPConfigFile: "mcp.json",
		MaxTurns:      agent.DefaultMaxTurns,
		ToolTimeout:   30 * time.Second,
	}
}

func (o *ChatOptions) Validate() []error {
	var errs []error
	errs = append(errs, o.Model.Validate()...)
	if o.MaxTurns <= 0 {
		errs = append(errs, fmt.Errorf("max-turns must be positive, got %d", o.MaxTurns))
	}
	return errs
}

func NewCmdChat() *cobra.Command {
	o := NewChatOptions()

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Chat with the CityCatalyst data tools",
		Long: heredoc.Doc(`
			Start a conversation in which the model can call the CityCatalyst
			Global API tools (emissions, city areas, datasource catalogue).

			Without arguments an interactive prompt opens; type 'exit', 'quit'
			or 'q' to leave. With a message argument, the answer is printed and
			the command returns.
		`),
		Example: heredoc.Doc(`
			# Interactive session against a local catalystd
			catalystctl chat

			# One-shot question
			catalystctl chat "What were SEEG's II.1.1 emissions for BR SER in 2022?"

			# Use a different provider and tool host config
			catalystctl chat --model.provider=deepseek --model.id=deepseek-chat --mcp-config=./mcp.json

			# Load settings from a file; explicit flags still win
			catalystctl chat --config ./catalystctl.yaml
		`),
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := options.LoadConfigFile(o.ConfigFile, cmd.Flags(), o); err != nil {
				return err
			}
			if errs := o.Validate(); len(errs) > 0 {
				return fmt.Errorf("invalid options: %v", errs)
			}
			return o.Run(cmd.Context(), args)
		},
	}

	fs := cmd.Flags()
	o.Model.AddFlags(fs)
	fs.StringVar(&o.ConfigFile, "config", "", "Path to an optional config file; flags override file values.")
	fs.StringVar(&o.MCPConfigFile, "mcp-config", o.MCPConfigFile, "Path to the tool host configuration file.")
	fs.IntVar(&o.MaxTurns, "max-turns", o.MaxTurns, "Maximum model/tool round trips per user turn.")
	fs.DurationVar(&o.ToolTimeout, "tool-timeout", o.ToolTimeout, "Timeout for a single tool call.")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "Enable debug logging.")

	return cmd
}

// Run wires tool hosts, model and runner, then enters single-shot or
// interactive mode.
func (o *ChatOptions) Run(ctx context.Context, args []string) error {
	logger.SetVerbose(o.Verbose)

	// API keys commonly live in a .env next to the binary; absence is fine.
	if err := godotenv.Load(); err == nil {
		logger.Debug("[chat] loaded .env")
	}

	cfg, err := mcp.LoadConfig(o.MCPConfigFile)
	if err != nil {
		return err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid mcp config: %v", errs)
	}

	manager := mcp.NewManager(cfg)
	if err := manager.Initialize(ctx); err != nil {
		return fmt.Errorf("connect tool hosts: %w", err)
	}
	defer func() { _ = manager.Close() }()

	for _, name := range manager.ServerNames() {
		logger.Info("[chat] tool host %q: %s", name, manager.ServerStatus(name))
	}

	cm, err := llm.NewChatModel(ctx, o.Model)
	if err != nil {
		return fmt.Errorf("build %s chat model: %w", o.Model.Provider, err)
	}

	tools := manager.Tools()
	runner, err := agent.NewRunner(ctx, cm, tools, o.MaxTurns, o.ToolTimeout)
	if err != nil {
		return err
	}

	session := agent.NewSession()
	logger.Info("[chat] session %s: provider=%s model=%s tools=%d",
		session.ID, o.Model.Provider, o.Model.Model, len(tools))

	if len(args) > 0 {
		return runOnce(ctx, runner, session, strings.Join(args, " "), os.Stdout)
	}
	return runREPL(ctx, runner, session, os.Stdin, os.Stdout)
}
