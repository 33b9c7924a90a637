package handler

import (
	"context"
	"fmt"

	"wordtrainer/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Processor turns an inbound event into the messages to send back
type Processor interface {
	Handle(ctx context.Context, ev domain.Event) []domain.Response
}

// Sender delivers messages; *tele.Bot implements it
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Handler adapts telegram updates to the conversation state machine
type Handler struct {
	bot     *tele.Bot
	sender  Sender
	machine Processor
	logger  *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, machine Processor, logger *zap.Logger) *Handler {
	return &Handler{
		bot:     bot,
		sender:  bot,
		machine: machine,
		logger:  logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)

	// Menu labels arrive as plain text
	h.bot.Handle(tele.OnText, h.handleText)
}

// dispatch runs the event through the state machine and sends every response in order
func (h *Handler) dispatch(ev domain.Event) error {
	for _, resp := range h.machine.Handle(context.Background(), ev) {
		var opts []interface{}
		if markup := buildKeyboard(resp); markup != nil {
			opts = append(opts, markup)
		}

		if _, err := h.sender.Send(&tele.Chat{ID: resp.ChatID}, resp.Text, opts...); err != nil {
			h.logger.Error("Failed to send message",
				zap.Error(err),
				zap.Int64("chat_id", resp.ChatID),
			)
			return fmt.Errorf("failed to send message: %w", err)
		}
	}
	return nil
}
