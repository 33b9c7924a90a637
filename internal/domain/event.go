package domain

// Command is a user command decoded by the transport from its localized labels
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandNext
	CommandAddWord
	CommandDeleteWord
)

// MenuCommands are the fixed commands shown under every keyboard
var MenuCommands = []Command{CommandNext, CommandAddWord, CommandDeleteWord}

func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandNext:
		return "next"
	case CommandAddWord:
		return "add_word"
	case CommandDeleteWord:
		return "delete_word"
	default:
		return "none"
	}
}

// Event is an inbound message already stripped of transport details
type Event struct {
	UserID      int64
	ChatID      int64
	DisplayName string
	Text        string
	Command     Command
}

// Key returns the session key of the event
func (e Event) Key() SessionKey {
	return SessionKey{UserID: e.UserID, ChatID: e.ChatID}
}

// Response is an outbound message. Choices and Commands render as a keyboard;
// when both are empty the transport keeps whatever keyboard the chat has.
type Response struct {
	ChatID   int64
	Text     string
	Choices  []string
	Commands []Command
}

// HasKeyboard reports whether the response carries keyboard options
func (r Response) HasKeyboard() bool {
	return len(r.Choices) > 0 || len(r.Commands) > 0
}
