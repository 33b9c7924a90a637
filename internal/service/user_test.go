package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_EnsureUser(t *testing.T) {
	tests := []struct {
		name          string
		chatID        int64
		displayName   string
		storedName    string
		mockID        int64
		mockError     error
		expectedID    int64
		expectedError bool
	}{
		{
			name:        "named user",
			chatID:      100,
			displayName: "alice",
			storedName:  "alice",
			mockID:      1,
			expectedID:  1,
		},
		{
			name:        "name is trimmed",
			chatID:      100,
			displayName: "  bob ",
			storedName:  "bob",
			mockID:      2,
			expectedID:  2,
		},
		{
			name:        "empty name falls back",
			chatID:      200,
			displayName: "",
			storedName:  domain.DefaultDisplayName,
			mockID:      3,
			expectedID:  3,
		},
		{
			name:          "database error",
			chatID:        300,
			displayName:   "carol",
			storedName:    "carol",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("UpsertUser", mock.Anything, tt.chatID, tt.storedName).Return(tt.mockID, tt.mockError)

			service := NewUserService(mockRepo, time.Second)

			id, err := service.EnsureUser(context.Background(), tt.chatID, tt.displayName)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_EnsureUser_AppliesTimeout(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("UpsertUser", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), int64(100), "alice").Return(int64(1), nil)

	service := NewUserService(mockRepo, time.Second)

	_, err := service.EnsureUser(context.Background(), 100, "alice")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
