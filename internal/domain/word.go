package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// QuizSize is the number of candidates offered in one round
const QuizSize = 4

// MaxAttempts is the number of wrong answers after which the answer is revealed
const MaxAttempts = 3

// MaxWordLength is the longest word, in runes, the store columns accept
const MaxWordLength = 255

// WordPair is a target word with its translation
type WordPair struct {
	Target      string `db:"target_text" yaml:"target"`
	Translation string `db:"translated_text" yaml:"translation"`
}

// UserWord is a word pair owned by a single user
type UserWord struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	Target      string    `db:"target_text"`
	Translation string    `db:"translated_text"`
	CreatedAt   time.Time `db:"created_at"`
}

// Pair returns the word pair of a personal word
func (w UserWord) Pair() WordPair {
	return WordPair{Target: w.Target, Translation: w.Translation}
}

// QuizSet is one round: the answer pair and the shuffled options shown to the user
type QuizSet struct {
	Target      string
	Translation string
	Distractors []string
	Options     []string
}

// NormalizeWord trims the input, collapses inner whitespace and capitalizes it:
// the first letter upper case, the rest lower case.
// Every existence check, insert, delete and answer comparison goes through it.
func NormalizeWord(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// SameWord reports whether two user-entered words denote the same entry
func SameWord(a, b string) bool {
	return strings.EqualFold(NormalizeWord(a), NormalizeWord(b))
}

// CheckWord validates a normalized word or translation
func CheckWord(w string) error {
	if w == "" {
		return ErrEmptyWord
	}
	if utf8.RuneCountInString(w) > MaxWordLength {
		return ErrWordTooLong
	}
	return nil
}

// CheckTarget validates a normalized target word. Targets become quiz buttons, so they are
// limited to letters, digits, spaces, hyphens and apostrophes and can never read as a
// slash command or a menu label.
func CheckTarget(w string) error {
	if err := CheckWord(w); err != nil {
		return err
	}
	for _, r := range w {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.Is(unicode.Mn, r):
		case r == ' ', r == '-', r == '\'', r == '’':
		default:
			return ErrInvalidWord
		}
	}
	return nil
}
