package session

import (
	"sync"
	"time"

	"wordtrainer/internal/domain"
)

type entry struct {
	mu      sync.Mutex
	session domain.Session
	// removed is set by Sweep under mu; a waiter that finds it set must look the key up again
	removed bool
}

// Store keeps conversation sessions in memory. Every session has its own lock:
// events for one key run one at a time, different keys never wait on each other.
type Store struct {
	mu      sync.Mutex
	entries map[domain.SessionKey]*entry
	ttl     time.Duration
	now     func() time.Time
}

// NewStore creates a session store. Sessions idle for longer than ttl go back to Idle;
// a non-positive ttl keeps them forever.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[domain.SessionKey]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Acquire locks the session for key, creating it in Idle on first use, and returns it
// with the release func. The session must not be touched after release.
func (s *Store) Acquire(key domain.SessionKey) (*domain.Session, func()) {
	for {
		s.mu.Lock()
		e, ok := s.entries[key]
		if !ok {
			e = &entry{session: domain.Session{Key: key, State: domain.Idle{}, LastSeen: s.now()}}
			s.entries[key] = e
		}
		s.mu.Unlock()

		e.mu.Lock()
		if e.removed {
			e.mu.Unlock()
			continue
		}

		if s.expired(e.session.LastSeen, s.now()) {
			e.session.Reset()
		}

		var once sync.Once
		release := func() {
			once.Do(func() {
				e.session.LastSeen = s.now()
				e.mu.Unlock()
			})
		}
		return &e.session, release
	}
}

// Sweep drops sessions idle for longer than the ttl and returns how many were dropped.
// Sessions locked by a running event are skipped.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, e := range s.entries {
		if !e.mu.TryLock() {
			continue
		}
		if s.expired(e.session.LastSeen, now) {
			e.removed = true
			delete(s.entries, key)
			removed++
		}
		e.mu.Unlock()
	}
	return removed
}

// Len returns the number of tracked sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) expired(lastSeen, now time.Time) bool {
	return s.ttl > 0 && now.Sub(lastSeen) > s.ttl
}
