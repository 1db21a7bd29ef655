// Package agent drives the tool-calling conversation loop: transcript
// ownership, tool execution, and the bounded turn runner.
package agent

import (
	"time"

	"github.com/cloudwego/eino/schema"
)

// Role is the sender role of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolCall is the model's request to execute a tool. Arguments is whatever
// JSON text the model produced; it may be malformed.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Message is one transcript entry. Immutable once appended. ToolCalls only
// appear on assistant messages; ToolCallID only on tool-result messages,
// where it names the request the message answers.
type Message struct {
	Role       Role        `json:"role"`
	Content    string      `json:"content"`
	Name       string      `json:"name,omitempty"`
	ToolCalls  []*ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string      `json:"tool_call_id,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) *Message {
	return &Message{Role: RoleUser, Content: content, CreatedAt: time.Now()}
}

// NewToolMessage creates a tool-result message correlated to toolCallID.
func NewToolMessage(toolCallID, name, content string) *Message {
	return &Message{
		Role:       RoleTool,
		Content:    content,
		Name:       name,
		ToolCallID: toolCallID,
		CreatedAt:  time.Now(),
	}
}

// ToSchemaMessage converts a transcript message for a model call.
func ToSchemaMessage(msg *Message) *schema.Message {
	sm := &schema.Message{
		Role:       toSchemaRole(msg.Role),
		Content:    msg.Content,
		Name:       msg.Name,
		ToolCallID: msg.ToolCallID,
	}
	for _, tc := range msg.ToolCalls {
		sm.ToolCalls = append(sm.ToolCalls, schema.ToolCall{
			ID: tc.ID,
			Function: schema.FunctionCall{
				Name:      tc.Name,
				Arguments: tc.Arguments,
			},
		})
	}
	return sm
}

// FromSchemaMessage converts a model response into a transcript message.
func FromSchemaMessage(sm *schema.Message) *Message {
	if sm == nil {
		return nil
	}
	msg := &Message{
		Role:       fromSchemaRole(sm.Role),
		Content:    sm.Content,
		Name:       sm.Name,
		ToolCallID: sm.ToolCallID,
		CreatedAt:  time.Now(),
	}
	for _, tc := range sm.ToolCalls {
		msg.ToolCalls = append(msg.ToolCalls, &ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return msg
}

func toSchemaRole(role Role) schema.RoleType {
	switch role {
	case RoleAssistant:
		return schema.Assistant
	case RoleTool:
		return schema.Tool
	default:
		return schema.User
	}
}

func fromSchemaRole(role schema.RoleType) Role {
	switch role {
	case schema.Assistant:
		return RoleAssistant
	case schema.Tool:
		return RoleTool
	default:
		return RoleUser
	}
}
