package service

import (
	"go.uber.org/zap"
)

// SessionSweeper drops sessions that have been idle for too long
type SessionSweeper interface {
	Sweep() int
	Len() int
}

// SessionJanitor removes expired conversation sessions
type SessionJanitor struct {
	sessions SessionSweeper
	logger   *zap.Logger
}

// NewSessionJanitor creates a new session janitor
func NewSessionJanitor(sessions SessionSweeper, logger *zap.Logger) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		logger:   logger,
	}
}

// CleanupExpired sweeps expired sessions and returns how many were removed
func (j *SessionJanitor) CleanupExpired() int {
	removed := j.sessions.Sweep()
	remaining := zap.Int("remaining", j.sessions.Len())
	if removed > 0 {
		j.logger.Info("Expired sessions removed", zap.Int("count", removed), remaining)
	} else {
		j.logger.Debug("No expired sessions", remaining)
	}
	return removed
}
