package testutil

import (
	"time"

	"wordtrainer/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUserWord creates a test personal word
func NewTestUserWord(id, userID int64, target, translation string) *domain.UserWord {
	return &domain.UserWord{
		ID:          id,
		UserID:      userID,
		Target:      target,
		Translation: translation,
		CreatedAt:   time.Now(),
	}
}

// BasicWordPairs returns four shared words, the smallest dictionary a round can run on
func BasicWordPairs() []domain.WordPair {
	return []domain.WordPair{
		{Target: "Hello", Translation: "Привет"},
		{Target: "Car", Translation: "Машина"},
		{Target: "Sky", Translation: "Небо"},
		{Target: "Tree", Translation: "Дерево"},
	}
}
