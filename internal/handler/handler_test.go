package handler

import (
	"context"
	"errors"
	"testing"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type sentMessage struct {
	to     tele.Recipient
	text   interface{}
	markup *tele.ReplyMarkup
}

type fakeSender struct {
	sent []sentMessage
	err  error
}

func (s *fakeSender) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	msg := sentMessage{to: to, text: what}
	for _, opt := range opts {
		if m, ok := opt.(*tele.ReplyMarkup); ok {
			msg.markup = m
		}
	}
	s.sent = append(s.sent, msg)
	return &tele.Message{}, nil
}

type fakeProcessor struct {
	events    []domain.Event
	responses []domain.Response
}

func (p *fakeProcessor) Handle(_ context.Context, ev domain.Event) []domain.Response {
	p.events = append(p.events, ev)
	return p.responses
}

func newTestHandler(responses ...domain.Response) (*Handler, *fakeSender, *fakeProcessor) {
	sender := &fakeSender{}
	machine := &fakeProcessor{responses: responses}
	return &Handler{sender: sender, machine: machine, logger: testutil.NewTestLogger()}, sender, machine
}

func TestHandler_Dispatch(t *testing.T) {
	h, sender, machine := newTestHandler(
		domain.Response{ChatID: 10, Text: "Привет"},
		domain.Response{ChatID: 10, Text: "Выбери перевод", Choices: []string{"Sky", "Car"}, Commands: domain.MenuCommands},
	)
	ev := domain.Event{UserID: 1, ChatID: 10, Command: domain.CommandStart}

	err := h.dispatch(ev)

	require.NoError(t, err)
	assert.Equal(t, []domain.Event{ev}, machine.events)
	require.Len(t, sender.sent, 2)

	assert.Equal(t, "10", sender.sent[0].to.Recipient())
	assert.Equal(t, "Привет", sender.sent[0].text)
	assert.Nil(t, sender.sent[0].markup)

	assert.Equal(t, "Выбери перевод", sender.sent[1].text)
	require.NotNil(t, sender.sent[1].markup)
	assert.Len(t, sender.sent[1].markup.ReplyKeyboard, 3)
}

func TestHandler_DispatchSendError(t *testing.T) {
	h, sender, _ := newTestHandler(domain.Response{ChatID: 10, Text: "Привет"})
	sender.err = errors.New("network down")

	err := h.dispatch(domain.Event{UserID: 1, ChatID: 10})

	assert.ErrorContains(t, err, "network down")
}

func TestBuildKeyboard(t *testing.T) {
	t.Run("no keyboard", func(t *testing.T) {
		assert.Nil(t, buildKeyboard(domain.Response{Text: "hi"}))
	})

	t.Run("choices then commands, two per row", func(t *testing.T) {
		markup := buildKeyboard(domain.Response{
			Choices:  []string{"Tree", "Sky", "Car", "Hello"},
			Commands: domain.MenuCommands,
		})

		require.NotNil(t, markup)
		assert.True(t, markup.ResizeKeyboard)

		var labels [][]string
		for _, row := range markup.ReplyKeyboard {
			var line []string
			for _, btn := range row {
				line = append(line, btn.Text)
			}
			labels = append(labels, line)
		}
		assert.Equal(t, [][]string{
			{"Tree", "Sky"},
			{"Car", "Hello"},
			{"Следующее слово ➡️", "Добавить слово ➕"},
			{"Удалить слово 🔙"},
		}, labels)
	})

	t.Run("menu only", func(t *testing.T) {
		markup := buildKeyboard(domain.Response{Commands: domain.MenuCommands})

		require.NotNil(t, markup)
		assert.Len(t, markup.ReplyKeyboard, 2)
	})
}

func TestEventFromMessage(t *testing.T) {
	tests := []struct {
		name     string
		msg      *tele.Message
		expected domain.Event
	}{
		{
			name: "username preferred",
			msg: &tele.Message{
				Sender: &tele.User{ID: 1, Username: "alice", FirstName: "Alice"},
				Chat:   &tele.Chat{ID: 10},
				Text:   "  sky\n",
			},
			expected: domain.Event{UserID: 1, ChatID: 10, DisplayName: "alice", Text: "sky"},
		},
		{
			name: "first name fallback",
			msg: &tele.Message{
				Sender: &tele.User{ID: 2, FirstName: "Bob"},
				Chat:   &tele.Chat{ID: 20},
				Text:   "car",
			},
			expected: domain.Event{UserID: 2, ChatID: 20, DisplayName: "Bob", Text: "car"},
		},
		{
			name: "anonymous sender without chat",
			msg: &tele.Message{
				Sender: &tele.User{ID: 3},
				Text:   "tree",
			},
			expected: domain.Event{UserID: 3, ChatID: 3, DisplayName: domain.DefaultDisplayName, Text: "tree"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, eventFromMessage(tt.msg))
		})
	}
}
