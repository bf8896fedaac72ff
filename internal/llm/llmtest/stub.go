// Package llmtest provides an in-memory llm.Client for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/jonathan/link-doctor/internal/llm"
)

// Stub is an llm.Client that returns a canned response and records requests.
type Stub struct {
	Response string
	Err      error
	// ProviderName defaults to llm.ProviderOpenAI.
	ProviderName llm.Provider

	mu       sync.Mutex
	requests []llm.Request
}

// Complete records req and returns the canned response.
func (s *Stub) Complete(_ context.Context, req llm.Request) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}

// Provider returns the configured provider.
func (s *Stub) Provider() llm.Provider {
	if s.ProviderName == "" {
		return llm.ProviderOpenAI
	}
	return s.ProviderName
}

// Close is a no-op.
func (s *Stub) Close() error {
	return nil
}

// Requests returns a copy of the recorded requests.
func (s *Stub) Requests() []llm.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]llm.Request(nil), s.requests...)
}

// Calls returns how many times Complete was invoked.
func (s *Stub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

var _ llm.Client = (*Stub)(nil)
