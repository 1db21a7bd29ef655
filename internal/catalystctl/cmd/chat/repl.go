package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/openearth/catalyst/internal/catalystctl/agent"
)

var (
	promptColor = color.New(color.FgCyan, color.Bold)
	toolColor   = color.New(color.FgYellow)
	errColor    = color.New(color.FgRed)
)

// exit tokens are matched case-insensitively.
var exitWords = map[string]struct{}{
	"exit": {},
	"quit": {},
	"q":    {},
}

func isExitWord(s string) bool {
	_, ok := exitWords[strings.ToLower(s)]
	return ok
}

// runOnce answers a single message and returns.
func runOnce(ctx context.Context, runner *agent.Runner, session *agent.Session, input string, out io.Writer) error {
	runner.OnToolCall = func(name, arguments string) {
		toolColor.Fprintf(out, "> calling tool %q with %s\n", name, arguments)
	}

	answer, err := runner.RunTurn(ctx, session, input)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, answer)
	return nil
}

// runREPL reads lines until EOF or an exit word. A failed turn is reported
// and the prompt returns; the transcript survives, so asking again just
// works.
func runREPL(ctx context.Context, runner *agent.Runner, session *agent.Session, in io.Reader, out io.Writer) error {
	runner.OnToolCall = func(name, arguments string) {
		toolColor.Fprintf(out, "> calling tool %q with %s\n", name, arguments)
	}

	fmt.Fprintln(out, "Ask about CityCatalyst data. Type 'exit' to quit.")

	scanner := bufio.NewScanner(in)
	for {
		promptColor.Fprint(out, "You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if isExitWord(input) {
			fmt.Fprintln(out, "Goodbye.")
			return nil
		}

		answer, err := runner.RunTurn(ctx, session, input)
		if err != nil {
			errColor.Fprintf(out, "turn failed: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "\nAssistant: %s\n\n", answer)
	}

	return scanner.Err()
}
