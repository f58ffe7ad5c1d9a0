// Package memstore holds per-session key/value state in memory. It plays
// the role browser session storage plays for the site: values live only for
// the duration of a browsing session and are dropped when the session goes
// idle. Nothing is written to disk.
package memstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/numee-project/numee-backend/internal/domain"
)

// Store is a bounded, idle-evicting session store. The zero value is not
// usable; construct with New and call Stop on shutdown.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session

	maxSessions int
	idleTTL     time.Duration
	stop        chan struct{}
	stopOnce    sync.Once
}

type session struct {
	values   map[string]string
	lastSeen time.Time
}

// New creates a store capped at maxSessions live sessions. Sessions idle
// longer than idleTTL are evicted by a background janitor running every
// cleanupInterval. Call Stop on shutdown.
func New(maxSessions int, idleTTL, cleanupInterval time.Duration) *Store {
	s := &Store{
		sessions:    make(map[uuid.UUID]*session),
		maxSessions: maxSessions,
		idleTTL:     idleTTL,
		stop:        make(chan struct{}),
	}
	go s.janitor(cleanupInterval)
	return s
}

// Stop terminates the background janitor. Idempotent.
func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Get returns the value stored under key for the session, if any.
func (s *Store) Get(sid uuid.UUID, key string) (string, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[sid]
	if !ok {
		s.mu.RUnlock()
		return "", false
	}
	v, ok := sess.values[key]
	s.mu.RUnlock()

	if ok {
		s.touch(sid)
	}
	return v, ok
}

// Set stores value under key for the session, creating the session on first
// write. Returns ErrStoreFull when creating the session would exceed the
// cap; existing sessions can always be written to.
func (s *Store) Set(sid uuid.UUID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sid]
	if !ok {
		if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
			return domain.ErrStoreFull
		}
		sess = &session{values: make(map[string]string)}
		s.sessions[sid] = sess
	}
	sess.values[key] = value
	sess.lastSeen = time.Now()
	return nil
}

// Delete removes key from the session. Idempotent; a missing session or key
// is not an error.
func (s *Store) Delete(sid uuid.UUID, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[sid]; ok {
		delete(sess.values, key)
		sess.lastSeen = time.Now()
	}
}

// DropSession removes the whole session and all its values. Idempotent.
func (s *Store) DropSession(sid uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) touch(sid uuid.UUID) {
	s.mu.Lock()
	if sess, ok := s.sessions[sid]; ok {
		sess.lastSeen = time.Now()
	}
	s.mu.Unlock()
}

func (s *Store) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.idleTTL)
			s.mu.Lock()
			for sid, sess := range s.sessions {
				if sess.lastSeen.Before(cutoff) {
					delete(s.sessions, sid)
				}
			}
			s.mu.Unlock()
		}
	}
}
