package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/devai/internal/prompt"
)

// MockPromptSource stands in for a prompt.Client in tests.
type MockPromptSource struct {
	// GetFn allows test cases to mock the Get behavior
	GetFn func(ctx context.Context, secretID string) prompt.Lookup

	// Lookups maps secret ids to canned results. Missing ids report StatusNotFound.
	Lookups map[string]prompt.Lookup

	// Call tracking for verification
	GetCalls struct {
		mu sync.Mutex

		// SecretIDs contains every secret id passed to Get, in order
		SecretIDs []string
	}
}

// Get returns the canned lookup for secretID.
func (m *MockPromptSource) Get(ctx context.Context, secretID string) prompt.Lookup {
	m.GetCalls.mu.Lock()
	m.GetCalls.SecretIDs = append(m.GetCalls.SecretIDs, secretID)
	m.GetCalls.mu.Unlock()

	if m.GetFn != nil {
		return m.GetFn(ctx, secretID)
	}

	if lookup, ok := m.Lookups[secretID]; ok {
		return lookup
	}
	return prompt.Lookup{Status: prompt.StatusNotFound, Err: prompt.ErrNotFound}
}

// SecretIDs returns a copy of the secret ids requested so far.
func (m *MockPromptSource) SecretIDs() []string {
	m.GetCalls.mu.Lock()
	defer m.GetCalls.mu.Unlock()
	return append([]string(nil), m.GetCalls.SecretIDs...)
}

// NewMockPromptSourceWithTemplate creates a source that finds text under secretID.
func NewMockPromptSourceWithTemplate(secretID, text string) *MockPromptSource {
	return &MockPromptSource{
		Lookups: map[string]prompt.Lookup{
			secretID: {Text: text, Status: prompt.StatusFound},
		},
	}
}
