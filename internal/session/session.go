// Package session holds the process-wide authentication state: the bearer
// token and the user it belongs to, cached in memory and persisted under
// the state directory so a restart stays logged in.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"taskflow/internal/api"
	"taskflow/internal/model"
)

// ErrNotLoggedIn is returned by Validate when no token is held.
var ErrNotLoggedIn = errors.New("not logged in")

const stateFile = "session.json"

type persisted struct {
	Token string      `json:"token"`
	User  *model.User `json:"user,omitempty"`
}

// Session is the explicit lifecycle around auth state: Init hydrates from
// disk, Validate checks the token against the server, Teardown clears both
// the persisted and in-memory state. It satisfies api.TokenSource.
type Session struct {
	mu    sync.RWMutex
	path  string
	token string
	user  *model.User
}

func New(stateDir string) *Session {
	return &Session{path: filepath.Join(stateDir, stateFile)}
}

// Init loads persisted credentials, if any. A missing state file just
// means logged out.
func (s *Session) Init() error {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	var p persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("decode session: %w", err)
	}
	s.mu.Lock()
	s.token, s.user = p.Token, p.User
	s.mu.Unlock()
	return nil
}

// SetCredentials stores a fresh token and user, in memory and on disk.
func (s *Session) SetCredentials(token string, user *model.User) error {
	s.mu.Lock()
	s.token, s.user = token, user
	s.mu.Unlock()

	raw, err := json.MarshalIndent(persisted{Token: token, User: user}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Validate asks the server who the token belongs to and refreshes the
// cached user. An invalid token tears the session down.
func (s *Session) Validate(ctx context.Context, client *api.Client) (*model.User, error) {
	if s.Token() == "" {
		return nil, ErrNotLoggedIn
	}
	user, err := client.Me(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			s.Teardown()
		}
		return nil, err
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user, nil
}

// Teardown clears the in-memory state and removes the persisted file.
func (s *Session) Teardown() {
	s.mu.Lock()
	s.token, s.user = "", nil
	s.mu.Unlock()
	os.Remove(s.path)
}

// Token implements api.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the cached user, or nil when logged out.
func (s *Session) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}
