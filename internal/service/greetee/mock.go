package greetee

import (
	"context"
	"sync"
	"time"
)

// MockStore implements Service with in-memory storage for testing.
type MockStore struct {
	mu       sync.RWMutex
	greetees map[string]*Greetee
}

// NewMockStore creates a new in-memory greetee store.
func NewMockStore() *MockStore {
	return &MockStore{greetees: make(map[string]*Greetee)}
}

func (m *MockStore) Create(_ context.Context, userID string, params CreateParams) (*Greetee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.greetees[userID]; exists {
		return nil, ErrAlreadyExists
	}

	now := time.Now().UTC()
	g := &Greetee{
		ID:        userID,
		Name:      params.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.greetees[userID] = g

	out := *g
	return &out, nil
}

func (m *MockStore) Get(_ context.Context, userID string) (*Greetee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	g, ok := m.greetees[userID]
	if !ok {
		return nil, ErrNotFound
	}

	out := *g
	return &out, nil
}

func (m *MockStore) Update(_ context.Context, userID string, params UpdateParams) (*Greetee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.greetees[userID]
	if !ok {
		return nil, ErrNotFound
	}

	if params.Name != nil {
		g.Name = *params.Name
	}
	g.UpdatedAt = time.Now().UTC()

	out := *g
	return &out, nil
}

func (m *MockStore) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.greetees[userID]; !ok {
		return ErrNotFound
	}

	delete(m.greetees, userID)

	return nil
}

var _ Service = (*MockStore)(nil)
