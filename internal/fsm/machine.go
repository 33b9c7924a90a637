package fsm

import (
	"context"
	"errors"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/session"

	"go.uber.org/zap"
)

// UserRegistrar registers the sender of an event
type UserRegistrar interface {
	EnsureUser(ctx context.Context, chatID int64, displayName string) (int64, error)
}

// Dictionary is the personal dictionary as seen by the conversation
type Dictionary interface {
	WordExists(ctx context.Context, userID int64, target string) (bool, error)
	AddPersonalWord(ctx context.Context, userID int64, target, translation string) (*domain.UserWord, error)
	UpdatePersonalWord(ctx context.Context, userID int64, target, translation string) (*domain.UserWord, error)
	DeletePersonalWord(ctx context.Context, userID int64, target string) (*domain.UserWord, error)
}

// QuizSelector draws a quiz round
type QuizSelector interface {
	SelectQuizSet(ctx context.Context, userID int64) (*domain.QuizSet, error)
}

// Machine runs the conversation of every (user, chat) pair. Events for one pair
// are applied one at a time. A transient store failure leaves the session where it
// was; any other failure resets it and asks the user to start over.
type Machine struct {
	users    UserRegistrar
	words    Dictionary
	quiz     QuizSelector
	sessions *session.Store
	logger   *zap.Logger
}

// NewMachine creates a new state machine
func NewMachine(
	users UserRegistrar,
	words Dictionary,
	quiz QuizSelector,
	sessions *session.Store,
	logger *zap.Logger,
) *Machine {
	return &Machine{
		users:    users,
		words:    words,
		quiz:     quiz,
		sessions: sessions,
		logger:   logger,
	}
}

// step is the input of one transition
type step struct {
	ev     domain.Event
	userID int64
	logger *zap.Logger
}

// Handle applies the event to its session and returns the messages to send back
func (m *Machine) Handle(ctx context.Context, ev domain.Event) []domain.Response {
	sess, release := m.sessions.Acquire(ev.Key())
	defer release()

	logger := m.logger.With(
		zap.Int64("user_id", ev.UserID),
		zap.Int64("chat_id", ev.ChatID),
	)
	logger.Debug("Event received",
		zap.String("state", sess.State.Name()),
		zap.Stringer("command", ev.Command),
	)

	userID, err := m.users.EnsureUser(ctx, ev.ChatID, ev.DisplayName)
	if err != nil {
		return m.fail(logger, sess, ev.ChatID, "Failed to ensure user exists", err)
	}

	st := step{ev: ev, userID: userID, logger: logger}

	var (
		out  []domain.Response
		next domain.SessionState
	)
	if ev.Command != domain.CommandNone {
		out, next, err = m.onCommand(ctx, st)
	} else {
		out, next, err = m.onText(ctx, st, sess.State)
	}
	if err != nil {
		return m.fail(logger, sess, ev.ChatID, "Failed to handle event", err,
			zap.String("state", sess.State.Name()))
	}

	if next.Name() != sess.State.Name() {
		logger.Info("Session transition",
			zap.String("from", sess.State.Name()),
			zap.String("to", next.Name()),
		)
	}
	sess.State = next
	return out
}

func (m *Machine) fail(logger *zap.Logger, sess *domain.Session, chatID int64, msg string, err error, fields ...zap.Field) []domain.Response {
	logger.Error(msg, append(fields, zap.Error(err))...)
	if errors.Is(err, domain.ErrTransientStore) {
		return []domain.Response{composeTryAgain(chatID)}
	}
	sess.Reset()
	return []domain.Response{composeRestart(chatID)}
}

// onCommand handles the menu commands. They are accepted in every state and drop
// whatever flow was pending.
func (m *Machine) onCommand(ctx context.Context, st step) ([]domain.Response, domain.SessionState, error) {
	chatID := st.ev.ChatID

	switch st.ev.Command {
	case domain.CommandStart:
		name := st.ev.DisplayName
		if name == "" {
			name = domain.DefaultDisplayName
		}
		out, next, err := m.startRound(ctx, st)
		if err != nil {
			return nil, nil, err
		}
		return append([]domain.Response{composeWelcome(chatID, name)}, out...), next, nil

	case domain.CommandNext:
		return m.startRound(ctx, st)

	case domain.CommandAddWord:
		return []domain.Response{composeAskNewWord(chatID)}, domain.AwaitingNewWord{}, nil

	case domain.CommandDeleteWord:
		return []domain.Response{composeAskDelete(chatID)}, domain.AwaitingDeleteTarget{}, nil
	}

	return []domain.Response{composeRestart(chatID)}, domain.Idle{}, nil
}

func (m *Machine) onText(ctx context.Context, st step, state domain.SessionState) ([]domain.Response, domain.SessionState, error) {
	switch s := state.(type) {
	case domain.AwaitingAnswer:
		return m.onAnswer(ctx, st, s)
	case domain.AwaitingNewWord:
		return m.onNewWord(ctx, st)
	case domain.AwaitingTranslation:
		return m.onTranslation(ctx, st, s)
	case domain.AwaitingDeleteTarget:
		return m.onDeleteTarget(ctx, st)
	}

	st.logger.Debug("Text outside of a flow", zap.Error(domain.ErrInvalidSession))
	return []domain.Response{composeRestart(st.ev.ChatID)}, domain.Idle{}, nil
}

func (m *Machine) startRound(ctx context.Context, st step) ([]domain.Response, domain.SessionState, error) {
	set, err := m.quiz.SelectQuizSet(ctx, st.userID)
	if errors.Is(err, domain.ErrInsufficientWords) {
		return []domain.Response{composeInsufficientWords(st.ev.ChatID)}, domain.Idle{}, nil
	}
	if err != nil {
		return nil, nil, err
	}

	round := domain.AwaitingAnswer{
		Target:      set.Target,
		Translation: set.Translation,
		Options:     set.Options,
	}
	return []domain.Response{composeQuiz(st.ev.ChatID, round)}, round, nil
}

func (m *Machine) onAnswer(ctx context.Context, st step, round domain.AwaitingAnswer) ([]domain.Response, domain.SessionState, error) {
	chatID := st.ev.ChatID

	if domain.SameWord(st.ev.Text, round.Target) {
		if _, err := m.words.UpdatePersonalWord(ctx, st.userID, round.Target, round.Translation); err != nil {
			return nil, nil, err
		}
		return []domain.Response{composeCorrect(chatID, round)}, domain.Idle{}, nil
	}

	round.Attempts++
	if round.Attempts >= domain.MaxAttempts {
		return []domain.Response{composeRevealed(chatID, round)}, domain.Idle{}, nil
	}
	return []domain.Response{composeWrong(chatID, round)}, round, nil
}

func (m *Machine) onNewWord(ctx context.Context, st step) ([]domain.Response, domain.SessionState, error) {
	chatID := st.ev.ChatID

	target := domain.NormalizeWord(st.ev.Text)
	if err := domain.CheckTarget(target); err != nil {
		return []domain.Response{composeRejectedWord(chatID, err)}, domain.AwaitingNewWord{}, nil
	}

	exists, err := m.words.WordExists(ctx, st.userID, target)
	if errors.Is(err, domain.ErrWordTooLong) {
		return []domain.Response{composeRejectedWord(chatID, err)}, domain.AwaitingNewWord{}, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return []domain.Response{composeDuplicate(chatID, target)}, domain.Idle{}, nil
	}
	return []domain.Response{composeAskTranslation(chatID, target)}, domain.AwaitingTranslation{Target: target}, nil
}

func (m *Machine) onTranslation(ctx context.Context, st step, pending domain.AwaitingTranslation) ([]domain.Response, domain.SessionState, error) {
	chatID := st.ev.ChatID

	translation := domain.NormalizeWord(st.ev.Text)
	if err := domain.CheckWord(translation); err != nil {
		return []domain.Response{composeRejectedTranslation(chatID, err)}, pending, nil
	}

	w, err := m.words.AddPersonalWord(ctx, st.userID, pending.Target, translation)
	switch {
	case errors.Is(err, domain.ErrDuplicateEntity):
		return []domain.Response{composeDuplicate(chatID, pending.Target)}, domain.Idle{}, nil
	case errors.Is(err, domain.ErrWordTooLong):
		return []domain.Response{composeRejectedTranslation(chatID, err)}, pending, nil
	}
	if err != nil {
		return nil, nil, err
	}

	st.logger.Info("Personal word added", zap.String("word", w.Target))
	return []domain.Response{composeWordAdded(chatID, w)}, domain.Idle{}, nil
}

func (m *Machine) onDeleteTarget(ctx context.Context, st step) ([]domain.Response, domain.SessionState, error) {
	chatID := st.ev.ChatID

	target := domain.NormalizeWord(st.ev.Text)
	if err := domain.CheckWord(target); err != nil {
		return []domain.Response{composeRejectedWord(chatID, err)}, domain.AwaitingDeleteTarget{}, nil
	}

	w, err := m.words.DeletePersonalWord(ctx, st.userID, target)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return []domain.Response{composeNotFound(chatID)}, domain.Idle{}, nil
	case errors.Is(err, domain.ErrWordTooLong):
		return []domain.Response{composeRejectedWord(chatID, err)}, domain.AwaitingDeleteTarget{}, nil
	}
	if err != nil {
		return nil, nil, err
	}

	st.logger.Info("Personal word deleted", zap.String("word", w.Target))
	return []domain.Response{composeDeleted(chatID, w)}, domain.Idle{}, nil
}
