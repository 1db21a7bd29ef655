package agent

import (
	"sync"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
)

// Session owns one conversation's transcript. The transcript is append-only:
// a message is either fully appended or not appended at all, and appended
// messages are never mutated. Each interactive session gets its own Session,
// so concurrent conversations never share state.
type Session struct {
	ID string

	mu       sync.RWMutex
	messages []*Message
}

func NewSession() *Session {
	return &Session{ID: uuid.New().String()}
}

// Append adds one message to the transcript.
func (s *Session) Append(msg *Message) {
	if msg == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Len returns the transcript length.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Messages returns a snapshot of the transcript.
func (s *Session) Messages() []*Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// History renders the transcript for a model call.
func (s *Session) History() []*schema.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*schema.Message, 0, len(s.messages))
	for _, msg := range s.messages {
		out = append(out, ToSchemaMessage(msg))
	}
	return out
}
