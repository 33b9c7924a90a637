package domain

import "time"

// SessionState is one step of the conversation. The set of implementations is closed:
// only the types in this file satisfy it.
type SessionState interface {
	Name() string
	sessionState()
}

// Idle means no round or edit flow is in progress
type Idle struct{}

// AwaitingAnswer holds a running quiz round
type AwaitingAnswer struct {
	Target      string
	Translation string
	Options     []string
	Attempts    int
}

// AwaitingNewWord waits for the target word of a new personal entry
type AwaitingNewWord struct{}

// AwaitingTranslation waits for the translation of Target
type AwaitingTranslation struct {
	Target string
}

// AwaitingDeleteTarget waits for the word to remove from the personal dictionary
type AwaitingDeleteTarget struct{}

func (Idle) Name() string                 { return "idle" }
func (AwaitingAnswer) Name() string       { return "awaiting_answer" }
func (AwaitingNewWord) Name() string      { return "awaiting_new_word" }
func (AwaitingTranslation) Name() string  { return "awaiting_translation" }
func (AwaitingDeleteTarget) Name() string { return "awaiting_delete_target" }

func (Idle) sessionState()                 {}
func (AwaitingAnswer) sessionState()       {}
func (AwaitingNewWord) sessionState()      {}
func (AwaitingTranslation) sessionState()  {}
func (AwaitingDeleteTarget) sessionState() {}

// SessionKey identifies a conversation
type SessionKey struct {
	UserID int64
	ChatID int64
}

// Session holds the transient state of one conversation. It lives in memory only.
type Session struct {
	Key      SessionKey
	State    SessionState
	LastSeen time.Time
}

// Reset puts the session back to Idle
func (s *Session) Reset() {
	s.State = Idle{}
}
