package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/openearth/catalyst/internal/pkg/errno"
	"github.com/openearth/catalyst/pkg/logger"
)

const DefaultMaxTurns = 10

// OnToolCall is invoked before each tool call so the interactive surface
// can show what the model is doing. May be nil.
type OnToolCall func(name, arguments string)

// Runner executes conversation turns: model call, tool calls, repeat until
// the model answers with content only.
type Runner struct {
	model    model.ToolCallingChatModel
	executor *ToolExecutor
	maxTurns int

	OnToolCall OnToolCall
}

// NewRunner binds the discovered tools to the chat model and prepares the
// executor. maxTurns bounds the model/tool round trips within one user
// turn; zero means DefaultMaxTurns.
func NewRunner(ctx context.Context, cm model.ToolCallingChatModel, tools []tool.BaseTool, maxTurns int, callTimeout time.Duration) (*Runner, error) {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	infos := make([]*schema.ToolInfo, 0, len(tools))
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			logger.Warn("[agent] tool info failed, not advertising: %v", err)
			continue
		}
		infos = append(infos, info)
	}

	if len(infos) > 0 {
		bound, err := cm.WithTools(infos)
		if err != nil {
			return nil, fmt.Errorf("bind %d tools to model: %w", len(infos), err)
		}
		cm = bound
	} else {
		logger.Warn("[agent] %v, running chat without tools", errno.ErrNoToolsAvailable)
	}

	return &Runner{
		model:    cm,
		executor: NewToolExecutor(ctx, tools, callTimeout),
		maxTurns: maxTurns,
	}, nil
}

// RunTurn appends the user's input and loops model calls and tool calls
// until the model produces a content-only message, which it returns.
//
// Tool-level failures are encoded into tool results and fed back to the
// model; only a model failure aborts the turn. The transcript keeps every
// fully-processed message either way, so the caller can retry.
func (r *Runner) RunTurn(ctx context.Context, session *Session, input string) (string, error) {
	session.Append(NewUserMessage(input))

	for turn := 0; turn < r.maxTurns; turn++ {
		reply, err := r.model.Generate(ctx, session.History())
		if err != nil {
			return "", fmt.Errorf("%w: %v", errno.ErrModelUnavailable, err)
		}

		assistant := FromSchemaMessage(reply)
		session.Append(assistant)

		if len(assistant.ToolCalls) == 0 {
			return assistant.Content, nil
		}

		if r.OnToolCall != nil {
			for _, tc := range assistant.ToolCalls {
				r.OnToolCall(tc.Name, tc.Arguments)
			}
		}

		// One result per request, appended in request order.
		results := r.executor.Execute(ctx, reply.ToolCalls)
		for _, res := range results {
			if res.IsError {
				logger.Warn("[agent] tool %q: %s", res.Name, res.Content)
			}
			session.Append(NewToolMessage(res.ID, res.Name, res.Content))
		}
	}

	return "", fmt.Errorf("%w (%d)", errno.ErrMaxTurnsExceeded, r.maxTurns)
}
