package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type fileState struct {
	Token              string `json:"token,omitempty"`
	RedirectAfterLogin string `json:"redirect_after_login,omitempty"`
}

// File persists the session as a small JSON document readable only by the owner.
type File struct {
	path string

	mu    sync.RWMutex
	state fileState
}

// OpenFile loads the session at path. A missing file yields an empty session.
func OpenFile(path string) (*File, error) {
	f := &File{path: path}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}

	if len(b) == 0 {
		return f, nil
	}

	if err := json.Unmarshal(b, &f.state); err != nil {
		return nil, fmt.Errorf("decoding session file: %w", err)
	}

	return f, nil
}

func (f *File) Token() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.state.Token
}

func (f *File) SetToken(token string) error {
	return f.update(func(s *fileState) { s.Token = token })
}

func (f *File) ClearToken() error {
	return f.update(func(s *fileState) { s.Token = "" })
}

func (f *File) RedirectPath() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.state.RedirectAfterLogin
}

func (f *File) SetRedirectPath(path string) error {
	return f.update(func(s *fileState) { s.RedirectAfterLogin = path })
}

func (f *File) update(fn func(s *fileState)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := f.state
	fn(&next)

	if err := f.write(next); err != nil {
		return err
	}

	f.state = next

	return nil
}

// write replaces the file atomically so a crash never leaves a truncated session.
func (f *File) write(s fileState) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("creating temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("writing session file: %w", err)
	}

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("setting session file mode: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing session file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replacing session file: %w", err)
	}

	return nil
}
