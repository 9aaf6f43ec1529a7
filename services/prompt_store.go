package services

import "sync"

// PromptStore holds the process-wide system prompt shared by every
// conversation. Overwrite semantics, last write wins.
type PromptStore struct {
	mu    sync.RWMutex
	value string
}

// NewPromptStore creates a store initialized with the given prompt
func NewPromptStore(initial string) *PromptStore {
	return &PromptStore{value: initial}
}

// Get returns the current system prompt
func (p *PromptStore) Get() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// Set overwrites the system prompt. Any string is accepted, including empty.
func (p *PromptStore) Set(prompt string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value = prompt
}
