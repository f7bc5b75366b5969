package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/devai/internal/generation"
)

// MockChatModel implements generation.ChatModel for testing
type MockChatModel struct {
	// StartChatFn allows test cases to mock the StartChat behavior
	StartChatFn func(ctx context.Context) (generation.ChatSession, error)

	// Default response values
	Session *MockChatSession
	Err     error

	// Call tracking for verification
	StartChatCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times StartChat was called
		Count int
	}
}

// StartChat implements the generation.ChatModel interface
func (m *MockChatModel) StartChat(ctx context.Context) (generation.ChatSession, error) {
	m.StartChatCalls.mu.Lock()
	m.StartChatCalls.Count++
	m.StartChatCalls.mu.Unlock()

	if m.StartChatFn != nil {
		return m.StartChatFn(ctx)
	}

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Session, nil
}

// StartChatCount returns how many chats were started.
func (m *MockChatModel) StartChatCount() int {
	m.StartChatCalls.mu.Lock()
	defer m.StartChatCalls.mu.Unlock()
	return m.StartChatCalls.Count
}

// MockChatSession implements generation.ChatSession for testing.
// Without SendFn it returns Replies in order, one per Send, and repeats the
// last reply once they run out.
type MockChatSession struct {
	// SendFn allows test cases to mock the Send behavior
	SendFn func(ctx context.Context, message string) (string, error)

	// Default response values
	Replies []string
	Err     error

	// Call tracking for verification
	SendCalls struct {
		mu sync.Mutex

		// Messages contains every message passed to Send, in order
		Messages []string
	}
}

// Send implements the generation.ChatSession interface
func (s *MockChatSession) Send(ctx context.Context, message string) (string, error) {
	s.SendCalls.mu.Lock()
	s.SendCalls.Messages = append(s.SendCalls.Messages, message)
	turn := len(s.SendCalls.Messages)
	s.SendCalls.mu.Unlock()

	if s.SendFn != nil {
		return s.SendFn(ctx, message)
	}

	if s.Err != nil {
		return "", s.Err
	}
	if len(s.Replies) == 0 {
		return "", nil
	}
	if turn > len(s.Replies) {
		turn = len(s.Replies)
	}
	return s.Replies[turn-1], nil
}

// Messages returns a copy of the messages sent so far.
func (s *MockChatSession) Messages() []string {
	s.SendCalls.mu.Lock()
	defer s.SendCalls.mu.Unlock()
	return append([]string(nil), s.SendCalls.Messages...)
}

// NewMockChatModelWithReplies creates a MockChatModel whose sessions answer
// with the given replies in order.
func NewMockChatModelWithReplies(replies ...string) *MockChatModel {
	return &MockChatModel{
		Session: &MockChatSession{Replies: replies},
	}
}

// NewMockChatModelWithError creates a MockChatModel that fails to start chats.
func NewMockChatModelWithError(err error) *MockChatModel {
	return &MockChatModel{
		Err: err,
	}
}
