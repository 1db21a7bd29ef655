package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/openearth/catalyst/internal/pkg/errno"
	"github.com/openearth/catalyst/pkg/logger"
	"github.com/openearth/catalyst/pkg/utils/json"
)

const defaultCallTimeout = 30 * time.Second

// ToolResult is the outcome of one tool call, success or failure. Exactly
// one is produced per requested call.
type ToolResult struct {
	ID      string
	Name    string
	Content string
	IsError bool
}

// ToolExecutor runs the tool calls of one assistant message.
type ToolExecutor struct {
	tools       map[string]tool.InvokableTool
	callTimeout time.Duration
}

// NewToolExecutor indexes the discovered tools by name. Tools that are not
// invokable (or whose Info call fails) are skipped with a warning.
func NewToolExecutor(ctx context.Context, tools []tool.BaseTool, callTimeout time.Duration) *ToolExecutor {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}

	byName := make(map[string]tool.InvokableTool, len(tools))
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			logger.Warn("[agent] tool info failed, skipping: %v", err)
			continue
		}
		inv, ok := t.(tool.InvokableTool)
		if !ok {
			logger.Warn("[agent] tool %q is not invokable, skipping", info.Name)
			continue
		}
		byName[info.Name] = inv
	}

	return &ToolExecutor{tools: byName, callTimeout: callTimeout}
}

// Execute runs every call and returns one result per call, in request
// order. Calls run concurrently; the result slice is indexed by request
// position so transcript order never depends on completion order.
func (e *ToolExecutor) Execute(ctx context.Context, calls []schema.ToolCall) []*ToolResult {
	results := make([]*ToolResult, len(calls))

	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(i int, call schema.ToolCall) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = &ToolResult{
						ID:      call.ID,
						Name:    call.Function.Name,
						Content: fmt.Sprintf("tool %q panicked: %v", call.Function.Name, r),
						IsError: true,
					}
				}
			}()
			results[i] = e.executeOne(ctx, call)
		}(i, call)
	}
	wg.Wait()

	return results
}

func (e *ToolExecutor) executeOne(ctx context.Context, call schema.ToolCall) *ToolResult {
	name := call.Function.Name

	args := sanitizeArguments(call.Function.Arguments)

	t, ok := e.tools[name]
	if !ok {
		return &ToolResult{
			ID:      call.ID,
			Name:    name,
			Content: fmt.Sprintf("%v: %q", errno.ErrUnknownTool, name),
			IsError: true,
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	logger.Debug("[agent] calling tool %q with %s", name, args)
	out, err := t.InvokableRun(callCtx, args)
	if err != nil {
		return &ToolResult{
			ID:      call.ID,
			Name:    name,
			Content: fmt.Sprintf("error calling tool %q: %v", name, err),
			IsError: true,
		}
	}

	return &ToolResult{ID: call.ID, Name: name, Content: out}
}

// sanitizeArguments replaces an un-parseable argument payload with an empty
// object so a sloppy model cannot abort the turn. Missing required fields
// then surface as a normal invalid-arguments tool result from the host.
func sanitizeArguments(raw string) string {
	if raw == "" {
		return "{}"
	}
	var probe map[string]interface{}
	if err := json.UnmarshalString(raw, &probe); err != nil {
		logger.Warn("[agent] %v, substituting empty bundle: %s", errno.ErrMalformedToolArguments, raw)
		return "{}"
	}
	return raw
}
