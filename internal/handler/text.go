package handler

import (
	"strings"
	"unicode"

	"wordtrainer/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages: menu labels and free text alike
func (h *Handler) handleText(c tele.Context) error {
	msg := c.Message()
	if msg == nil || msg.Sender == nil {
		h.logger.Warn("handleText: message without sender")
		return nil
	}

	ev := eventFromMessage(msg)
	ev.Command = decodeCommand(ev.Text)

	h.logger.Debug("Text received",
		zap.Int64("user_id", ev.UserID),
		zap.Stringer("command", ev.Command),
	)
	return h.dispatch(ev)
}

// cleanText removes all non-printable characters from inbound text
func cleanText(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(text))
}

// decodeCommand maps /start and the menu labels to commands; anything else is free text
func decodeCommand(text string) domain.Command {
	if text == "/start" || strings.HasPrefix(text, "/start ") || strings.HasPrefix(text, "/start@") {
		return domain.CommandStart
	}
	for cmd, label := range commandLabels {
		if text == label {
			return cmd
		}
	}
	return domain.CommandNone
}

func eventFromMessage(msg *tele.Message) domain.Event {
	ev := domain.Event{
		UserID:      msg.Sender.ID,
		ChatID:      msg.Sender.ID,
		DisplayName: displayName(msg.Sender),
		Text:        cleanText(msg.Text),
	}
	if msg.Chat != nil {
		ev.ChatID = msg.Chat.ID
	}
	return ev
}

func displayName(u *tele.User) string {
	switch {
	case u.Username != "":
		return u.Username
	case u.FirstName != "":
		return u.FirstName
	default:
		return domain.DefaultDisplayName
	}
}
