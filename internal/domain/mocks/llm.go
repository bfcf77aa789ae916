// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"sync"
)

// StoryWriter is a mock implementation of ports.StoryWriter.
type StoryWriter struct {
	// Text is returned from every Write call unless Err is set.
	Text string
	Err  error

	// Gate, when set, holds every Write until it is closed.
	Gate chan struct{}

	mu      sync.Mutex
	Prompts []string
}

// Write records the prompt and returns the configured text or error.
func (m *StoryWriter) Write(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	m.mu.Unlock()

	if m.Gate != nil {
		select {
		case <-m.Gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

// LastPrompt returns the most recent prompt, or "" if none was sent.
func (m *StoryWriter) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Prompts) == 0 {
		return ""
	}
	return m.Prompts[len(m.Prompts)-1]
}

// Calls returns how many prompts have been received.
func (m *StoryWriter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}
