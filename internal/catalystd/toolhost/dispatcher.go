package toolhost

import (
	"context"
	"fmt"

	"github.com/openearth/catalyst/internal/pkg/errno"
	"github.com/openearth/catalyst/pkg/logger"
)

// Result is the outcome of one tool invocation. Failures are encoded here,
// not raised: the caller always gets a Result to hand back to the model.
type Result struct {
	Content string
	IsError bool
}

func errorResult(err error) Result {
	return Result{Content: err.Error(), IsError: true}
}

// Dispatcher resolves invocations against the Registry and runs them.
type Dispatcher struct {
	registry *Registry
}

func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Invoke runs the named tool with the given arguments.
//
// Unknown tools, missing required arguments and adapter failures all come
// back as error-carrying Results; Invoke itself never fails, so one bad
// call cannot abort the conversation loop that issued it.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args Arguments) Result {
	def, ok := d.registry.Get(name)
	if !ok {
		return errorResult(fmt.Errorf("%v: %q", errno.ErrUnknownTool, name))
	}

	if missing := missingRequired(def, args); len(missing) > 0 {
		return errorResult(fmt.Errorf("%v: tool %q requires %v", errno.ErrInvalidArguments, name, missing))
	}

	out, err := def.Handler(ctx, args)
	if err != nil {
		logger.Warn("[toolhost] %s failed: %v", name, err)
		return errorResult(fmt.Errorf("tool %q failed: %v", name, err))
	}

	return Result{Content: out}
}

// missingRequired lists required schema fields absent from args. Arguments
// outside the schema are not rejected; they pass through to the handler.
func missingRequired(def *Definition, args Arguments) []string {
	var missing []string
	for _, p := range def.Params {
		if !p.Required {
			continue
		}
		if v, ok := args[p.Name]; !ok || v == nil {
			missing = append(missing, p.Name)
		}
	}
	return missing
}
