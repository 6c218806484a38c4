package oidcflow

import (
	"errors"
	"sync"
	"time"
)

// maxAge bounds how long a sign-in may stay in flight before the state is
// treated as expired.
const maxAge = 10 * time.Minute

// InMemoryRepo is a thread-safe in-memory implementation of the Repo interface
type InMemoryRepo struct {
	mu     sync.RWMutex
	states map[string]*FlowState
}

// NewInMemoryRepo creates a new in-memory flow state repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		states: make(map[string]*FlowState),
	}
}

// Upsert stores or updates a flow state
func (r *InMemoryRepo) Upsert(state string, flowState *FlowState) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}
	if flowState == nil {
		return errors.New("flowState cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Create a copy to prevent external modifications
	r.states[state] = &FlowState{
		CodeVerifier: flowState.CodeVerifier,
		Nonce:        flowState.Nonce,
		ReturnURL:    flowState.ReturnURL,
		Locale:       flowState.Locale,
		CreatedAt:    flowState.CreatedAt,
	}

	return nil
}

// Get retrieves a flow state by state parameter
func (r *InMemoryRepo) Get(state string) (*FlowState, error) {
	if state == "" {
		return nil, errors.New("state cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	flowState, exists := r.states[state]
	if !exists {
		return nil, errors.New("state not found")
	}
	if time.Since(flowState.CreatedAt) > maxAge {
		return nil, errors.New("state expired")
	}

	// Return a copy to prevent external modifications
	return &FlowState{
		CodeVerifier: flowState.CodeVerifier,
		Nonce:        flowState.Nonce,
		ReturnURL:    flowState.ReturnURL,
		Locale:       flowState.Locale,
		CreatedAt:    flowState.CreatedAt,
	}, nil
}

// Delete removes a flow state
func (r *InMemoryRepo) Delete(state string) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, state)
	return nil
}
