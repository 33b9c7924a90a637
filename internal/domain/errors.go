package domain

import "errors"

// Domain errors. Storage and service layers wrap these so callers can use errors.Is.
var (
	ErrDuplicateEntity   = errors.New("entity already exists")
	ErrNotFound          = errors.New("entity not found")
	ErrInsufficientWords = errors.New("not enough words for a quiz round")
	ErrTransientStore    = errors.New("store temporarily unavailable")
	ErrInvalidSession    = errors.New("no pending step for this input")
	ErrEmptyWord         = errors.New("word cannot be empty")
	ErrWordTooLong       = errors.New("word is too long")
	ErrInvalidWord       = errors.New("word contains characters that are not allowed")
)
