// Package session stores the credential and the post-login redirect path.
// It is the only state the client persists between runs.
package session

import (
	"sync"
)

type Provider interface {
	Token() string
	SetToken(token string) error
	ClearToken() error

	RedirectPath() string
	SetRedirectPath(path string) error
}

type Memory struct {
	mu       sync.RWMutex
	token    string
	redirect string
}

func NewMemory(token string) *Memory {
	return &Memory{token: token}
}

func (m *Memory) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.token
}

func (m *Memory) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token

	return nil
}

func (m *Memory) ClearToken() error {
	return m.SetToken("")
}

func (m *Memory) RedirectPath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.redirect
}

func (m *Memory) SetRedirectPath(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.redirect = path

	return nil
}
