package service

import (
	"context"
	"strings"
	"time"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/repository"
)

// UserService handles user registration
type UserService struct {
	userRepo repository.UserRepository
	timeout  time.Duration
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, timeout time.Duration) *UserService {
	return &UserService{
		userRepo: userRepo,
		timeout:  timeout,
	}
}

// EnsureUser creates the user record on first contact and keeps the display name fresh.
// It returns the internal user id.
func (s *UserService) EnsureUser(ctx context.Context, chatID int64, displayName string) (int64, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = domain.DefaultDisplayName
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.userRepo.UpsertUser(ctx, chatID, displayName)
}

// withTimeout bounds a store call; a zero duration means no extra bound
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
