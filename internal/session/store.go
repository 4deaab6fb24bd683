package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	sessionEntry = "user.json"
	sidebarEntry = "sidebarCollapsed"
)

// Store holds the current session in memory and mirrors every change to a
// single named entry on disk. It is the only component that touches durable
// session storage; everything else reads through its accessors.
type Store struct {
	baseDir string

	mu      sync.RWMutex
	current *Session
	subs    []func(*Session)
}

// NewStore creates a session store rooted at baseDir and loads any previously
// persisted session. If baseDir is empty, uses ~/.officebook/
func NewStore(baseDir string) (*Store, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(home, ".officebook")
	}

	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	store := &Store{baseDir: baseDir}
	store.current = store.load()

	log.Debug().Str("baseDir", baseDir).Bool("loggedIn", store.current != nil).
		Msg("session store initialized")

	return store, nil
}

// Current returns the session in memory, or nil when nobody is logged in.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Set replaces the current session and persists it synchronously.
func (s *Store) Set(sess Session) error {
	s.mu.Lock()

	data, err := json.MarshalIndent(&sess, "", "  ")
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.writeEntry(sessionEntry, data, 0600); err != nil {
		s.mu.Unlock()
		return err
	}

	s.current = &sess
	subs := s.subs
	s.mu.Unlock()

	log.Debug().Int64("userID", sess.ID).Str("role", sess.Role).Msg("session stored")

	s.notify(subs)
	return nil
}

// Clear removes the session from memory and from durable storage.
func (s *Store) Clear() error {
	s.mu.Lock()

	path := filepath.Join(s.baseDir, sessionEntry)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.mu.Unlock()
		return fmt.Errorf("failed to remove session entry: %w", err)
	}

	s.current = nil
	subs := s.subs
	s.mu.Unlock()

	log.Debug().Msg("session cleared")

	s.notify(subs)
	return nil
}

// Token returns the current bearer token, or the empty string when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Role returns the current user's role, falling back to DefaultRole.
func (s *Store) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.current.Role == "" {
		return DefaultRole
	}
	return s.current.Role
}

// IsLoggedIn reports whether a session is present.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Subscribe registers fn to be called after every Set or Clear. Callbacks run
// synchronously on the mutating goroutine.
func (s *Store) Subscribe(fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// SidebarCollapsed reads the persisted sidebar preference. Missing or
// malformed entries default to false.
func (s *Store) SidebarCollapsed() bool {
	data, err := os.ReadFile(filepath.Join(s.baseDir, sidebarEntry))
	if err != nil {
		return false
	}
	return string(data) == "true"
}

// SetSidebarCollapsed persists the sidebar preference as a text literal.
func (s *Store) SetSidebarCollapsed(collapsed bool) error {
	value := "false"
	if collapsed {
		value = "true"
	}
	return s.writeEntry(sidebarEntry, []byte(value), 0600)
}

// load reads the persisted session. Malformed content or a record without a
// token is treated as "no session", never as an error.
func (s *Store) load() *Session {
	data, err := os.ReadFile(filepath.Join(s.baseDir, sessionEntry))
	if err != nil {
		return nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		log.Debug().Err(err).Msg("discarding malformed session entry")
		return nil
	}

	if sess.Token == "" {
		log.Debug().Msg("discarding stored session without token")
		return nil
	}

	return &sess
}

// writeEntry writes a named entry atomically via a temp file and rename.
func (s *Store) writeEntry(name string, data []byte, perm os.FileMode) error {
	path := filepath.Join(s.baseDir, name)
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to save %s: %w", name, err)
	}

	return nil
}

func (s *Store) notify(subs []func(*Session)) {
	if len(subs) == 0 {
		return
	}
	current := s.Current()
	for _, fn := range subs {
		fn(current)
	}
}
