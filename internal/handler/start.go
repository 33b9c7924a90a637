package handler

import (
	"wordtrainer/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	msg := c.Message()
	if msg == nil || msg.Sender == nil {
		return nil
	}

	h.logger.Info("User started bot",
		zap.Int64("user_id", msg.Sender.ID),
		zap.String("username", msg.Sender.Username),
	)

	ev := eventFromMessage(msg)
	ev.Command = domain.CommandStart
	return h.dispatch(ev)
}
