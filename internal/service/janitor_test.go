package service

import (
	"testing"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/session"
	"wordtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSessionJanitor_CleanupExpired(t *testing.T) {
	tests := []struct {
		name      string
		removed   int
		remaining int
		level     zapcore.Level
		expected  int
	}{
		{
			name:      "sessions removed",
			removed:   3,
			remaining: 5,
			level:     zap.InfoLevel,
			expected:  3,
		},
		{
			name:      "nothing to remove",
			removed:   0,
			remaining: 2,
			level:     zap.DebugLevel,
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sweeper := new(testutil.MockSessionSweeper)
			sweeper.On("Sweep").Return(tt.removed)
			sweeper.On("Len").Return(tt.remaining)

			core, logs := observer.New(zap.DebugLevel)
			janitor := NewSessionJanitor(sweeper, zap.New(core))

			assert.Equal(t, tt.expected, janitor.CleanupExpired())
			sweeper.AssertExpectations(t)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, int64(tt.remaining), entry.ContextMap()["remaining"])
		})
	}
}

func TestSessionJanitor_WithStore(t *testing.T) {
	sessions := session.NewStore(0)
	for _, key := range []domain.SessionKey{{UserID: 1, ChatID: 10}, {UserID: 2, ChatID: 20}} {
		_, release := sessions.Acquire(key)
		release()
	}

	core, logs := observer.New(zap.DebugLevel)
	janitor := NewSessionJanitor(sessions, zap.New(core))

	assert.Equal(t, 0, janitor.CleanupExpired(), "zero TTL never expires")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, int64(2), logs.All()[0].ContextMap()["remaining"])
}
