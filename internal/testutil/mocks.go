package testutil

import (
	"context"

	"wordtrainer/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertUser(ctx context.Context, chatID int64, displayName string) (int64, error) {
	args := m.Called(ctx, chatID, displayName)
	return args.Get(0).(int64), args.Error(1)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) SeedSharedWords(ctx context.Context, pairs []domain.WordPair) error {
	args := m.Called(ctx, pairs)
	return args.Error(0)
}

func (m *MockWordRepository) WordExists(ctx context.Context, userID int64, target string) (bool, error) {
	args := m.Called(ctx, userID, target)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) AddPersonalWord(ctx context.Context, userID int64, target, translation string) (*domain.UserWord, bool, error) {
	args := m.Called(ctx, userID, target, translation)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.UserWord), args.Bool(1), args.Error(2)
}

func (m *MockWordRepository) UpsertPersonalWord(ctx context.Context, userID int64, target, translation string) (*domain.UserWord, error) {
	args := m.Called(ctx, userID, target, translation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserWord), args.Error(1)
}

func (m *MockWordRepository) DeletePersonalWord(ctx context.Context, userID int64, target string) (*domain.UserWord, error) {
	args := m.Called(ctx, userID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserWord), args.Error(1)
}

func (m *MockWordRepository) ListRandomWords(ctx context.Context, userID int64, limit int) ([]domain.WordPair, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordPair), args.Error(1)
}

// MockSessionSweeper is a mock for the session store sweep
type MockSessionSweeper struct {
	mock.Mock
}

func (m *MockSessionSweeper) Sweep() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockSessionSweeper) Len() int {
	args := m.Called()
	return args.Int(0)
}
