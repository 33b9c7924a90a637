package service

import (
	"context"
	"fmt"
	"time"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/repository"
)

// WordService handles the shared and personal dictionaries.
// Every word is normalized here before it reaches the store.
type WordService struct {
	wordRepo repository.WordRepository
	timeout  time.Duration
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, timeout time.Duration) *WordService {
	return &WordService{
		wordRepo: wordRepo,
		timeout:  timeout,
	}
}

// SeedSharedWords loads the shared dictionary; safe to run on every start
func (s *WordService) SeedSharedWords(ctx context.Context, pairs []domain.WordPair) error {
	normalized := make([]domain.WordPair, 0, len(pairs))
	for _, p := range pairs {
		target, translation := domain.NormalizeWord(p.Target), domain.NormalizeWord(p.Translation)
		if err := checkPair(target, translation); err != nil {
			return fmt.Errorf("seed pair %q/%q: %w", p.Target, p.Translation, err)
		}
		normalized = append(normalized, domain.WordPair{Target: target, Translation: translation})
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.wordRepo.SeedSharedWords(ctx, normalized)
}

// WordExists reports whether the word is in the shared dictionary or in the user's one
func (s *WordService) WordExists(ctx context.Context, userID int64, target string) (bool, error) {
	target = domain.NormalizeWord(target)
	if err := domain.CheckWord(target); err != nil {
		return false, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.wordRepo.WordExists(ctx, userID, target)
}

// AddPersonalWord saves a new personal word. Adding a word the user already owns
// leaves the stored pair unchanged and returns it with domain.ErrDuplicateEntity.
func (s *WordService) AddPersonalWord(ctx context.Context, userID int64, target, translation string) (*domain.UserWord, error) {
	target, translation = domain.NormalizeWord(target), domain.NormalizeWord(translation)
	if err := checkPair(target, translation); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	w, created, err := s.wordRepo.AddPersonalWord(ctx, userID, target, translation)
	if err != nil {
		return nil, err
	}
	if !created {
		return w, domain.ErrDuplicateEntity
	}
	return w, nil
}

// UpdatePersonalWord stores the pair in the personal dictionary, overwriting the translation
func (s *WordService) UpdatePersonalWord(ctx context.Context, userID int64, target, translation string) (*domain.UserWord, error) {
	target, translation = domain.NormalizeWord(target), domain.NormalizeWord(translation)
	if err := domain.CheckWord(target); err != nil {
		return nil, err
	}
	if err := domain.CheckWord(translation); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.wordRepo.UpsertPersonalWord(ctx, userID, target, translation)
}

// DeletePersonalWord removes a word from the personal dictionary
func (s *WordService) DeletePersonalWord(ctx context.Context, userID int64, target string) (*domain.UserWord, error) {
	target = domain.NormalizeWord(target)
	if err := domain.CheckWord(target); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.wordRepo.DeletePersonalWord(ctx, userID, target)
}

// checkPair validates a pair that is about to enter a dictionary
func checkPair(target, translation string) error {
	if err := domain.CheckTarget(target); err != nil {
		return err
	}
	return domain.CheckWord(translation)
}
