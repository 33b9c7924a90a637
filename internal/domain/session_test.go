package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionState_Name(t *testing.T) {
	tests := []struct {
		state    SessionState
		expected string
	}{
		{state: Idle{}, expected: "idle"},
		{state: AwaitingAnswer{Target: "Sky"}, expected: "awaiting_answer"},
		{state: AwaitingNewWord{}, expected: "awaiting_new_word"},
		{state: AwaitingTranslation{Target: "Sky"}, expected: "awaiting_translation"},
		{state: AwaitingDeleteTarget{}, expected: "awaiting_delete_target"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.Name())
		})
	}
}

func TestSession_Reset(t *testing.T) {
	s := &Session{State: AwaitingTranslation{Target: "Sky"}}
	s.Reset()
	assert.Equal(t, Idle{}, s.State)
}

func TestEvent_Key(t *testing.T) {
	ev := Event{UserID: 1, ChatID: 2}
	assert.Equal(t, SessionKey{UserID: 1, ChatID: 2}, ev.Key())
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "start", CommandStart.String())
	assert.Equal(t, "next", CommandNext.String())
	assert.Equal(t, "add_word", CommandAddWord.String())
	assert.Equal(t, "delete_word", CommandDeleteWord.String())
	assert.Equal(t, "none", CommandNone.String())
}

func TestResponse_HasKeyboard(t *testing.T) {
	assert.False(t, Response{Text: "hi"}.HasKeyboard())
	assert.True(t, Response{Choices: []string{"Sky"}}.HasKeyboard())
	assert.True(t, Response{Commands: MenuCommands}.HasKeyboard())
}
