// internal/game/session.go
//
// Session wraps a GuessState for callers that share it across goroutines
// (the HTTP surface). Each call runs to completion under the session mutex,
// so readers never see a partially applied edit.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// Session is a GuessState with an identity and a lock.
type Session struct {
	ID string

	mu         sync.Mutex
	state      *GuessState
	lastActive time.Time
}

// NewSession creates an empty session with a random ID.
func NewSession() *Session {
	return &Session{
		ID:         randomID(),
		state:      New(),
		lastActive: time.Now(),
	}
}

// SetCurrentGuess normalizes raw into the input buffer and returns the result.
func (s *Session) SetCurrentGuess(raw string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	s.state.SetCurrentGuess(raw)
	return s.state.Snapshot()
}

// CommitIfComplete commits a complete guess and reports whether it did.
func (s *Session) CommitIfComplete() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	ok := s.state.CommitIfComplete()
	return s.state.Snapshot(), ok
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// Subscribe registers fn for state changes. fn is called with the session
// lock held and must not call back into the session.
func (s *Session) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	unsub := s.state.Subscribe(fn)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		unsub()
	}
}

// LastActive reports when the session was last mutated.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
