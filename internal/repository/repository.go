package repository

import (
	"context"

	"wordtrainer/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	// UpsertUser creates the user on first contact and refreshes the display name afterwards.
	UpsertUser(ctx context.Context, chatID int64, displayName string) (int64, error)
}

// WordRepository defines shared and personal dictionary operations.
// Word arguments are expected to be normalized already; lookups are case-insensitive.
type WordRepository interface {
	SeedSharedWords(ctx context.Context, pairs []domain.WordPair) error
	WordExists(ctx context.Context, userID int64, target string) (bool, error)
	// AddPersonalWord is first-write-wins: on conflict it returns the existing row and created=false.
	AddPersonalWord(ctx context.Context, userID int64, target, translation string) (*domain.UserWord, bool, error)
	// UpsertPersonalWord overwrites the translation on conflict.
	UpsertPersonalWord(ctx context.Context, userID int64, target, translation string) (*domain.UserWord, error)
	// DeletePersonalWord returns domain.ErrNotFound when nothing matched.
	DeletePersonalWord(ctx context.Context, userID int64, target string) (*domain.UserWord, error)
	// ListRandomWords may return fewer than limit rows; callers must check the length.
	ListRandomWords(ctx context.Context, userID int64, limit int) ([]domain.WordPair, error)
}
