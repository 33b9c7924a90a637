package testutil

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"wordtrainer/internal/domain"
)

// MemoryStore is an in-memory UserRepository and WordRepository with the same
// conflict rules as the postgres store. Tests use it to drive whole conversations.
type MemoryStore struct {
	mu       sync.Mutex
	users    map[int64]*domain.User // by chat id
	shared   map[string]domain.WordPair
	personal map[int64]map[string]domain.UserWord
	nextID   int64
	failWith error
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[int64]*domain.User),
		shared:   make(map[string]domain.WordPair),
		personal: make(map[int64]map[string]domain.UserWord),
	}
}

// FailWith makes every following call return err until called again with nil
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

func key(target string) string {
	return strings.ToLower(target)
}

func (s *MemoryStore) UpsertUser(_ context.Context, chatID int64, displayName string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return 0, s.failWith
	}

	if u, ok := s.users[chatID]; ok {
		u.DisplayName = displayName
		return u.ID, nil
	}
	s.nextID++
	s.users[chatID] = &domain.User{ID: s.nextID, ChatID: chatID, DisplayName: displayName, CreatedAt: time.Now()}
	return s.nextID, nil
}

// User returns the user stored for a chat
func (s *MemoryStore) User(chatID int64) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[chatID]
	if !ok {
		return domain.User{}, false
	}
	return *u, true
}

func (s *MemoryStore) SeedSharedWords(_ context.Context, pairs []domain.WordPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}

	for _, p := range pairs {
		if existing, ok := s.shared[key(p.Target)]; ok {
			existing.Translation = p.Translation
			s.shared[key(p.Target)] = existing
			continue
		}
		s.shared[key(p.Target)] = p
	}
	return nil
}

func (s *MemoryStore) WordExists(_ context.Context, userID int64, target string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return false, s.failWith
	}

	if _, ok := s.shared[key(target)]; ok {
		return true, nil
	}
	_, ok := s.personal[userID][key(target)]
	return ok, nil
}

func (s *MemoryStore) AddPersonalWord(_ context.Context, userID int64, target, translation string) (*domain.UserWord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, false, s.failWith
	}

	if w, ok := s.personal[userID][key(target)]; ok {
		return &w, false, nil
	}
	w := s.insertLocked(userID, target, translation)
	return &w, true, nil
}

func (s *MemoryStore) UpsertPersonalWord(_ context.Context, userID int64, target, translation string) (*domain.UserWord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}

	if w, ok := s.personal[userID][key(target)]; ok {
		w.Translation = translation
		s.personal[userID][key(target)] = w
		return &w, nil
	}
	w := s.insertLocked(userID, target, translation)
	return &w, nil
}

func (s *MemoryStore) insertLocked(userID int64, target, translation string) domain.UserWord {
	if s.personal[userID] == nil {
		s.personal[userID] = make(map[string]domain.UserWord)
	}
	s.nextID++
	w := domain.UserWord{ID: s.nextID, UserID: userID, Target: target, Translation: translation, CreatedAt: time.Now()}
	s.personal[userID][key(target)] = w
	return w
}

func (s *MemoryStore) DeletePersonalWord(_ context.Context, userID int64, target string) (*domain.UserWord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}

	w, ok := s.personal[userID][key(target)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(s.personal[userID], key(target))
	return &w, nil
}

func (s *MemoryStore) ListRandomWords(_ context.Context, userID int64, limit int) ([]domain.WordPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}

	merged := make(map[string]domain.WordPair, len(s.shared))
	for k, p := range s.shared {
		merged[k] = p
	}
	for k, w := range s.personal[userID] {
		merged[k] = w.Pair()
	}

	pairs := make([]domain.WordPair, 0, len(merged))
	for _, p := range merged {
		pairs = append(pairs, p)
	}
	rand.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	if len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs, nil
}

// PersonalWords returns a copy of the user's personal dictionary keyed by lower-case target
func (s *MemoryStore) PersonalWords(userID int64) map[string]domain.UserWord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]domain.UserWord, len(s.personal[userID]))
	for k, w := range s.personal[userID] {
		out[k] = w
	}
	return out
}
