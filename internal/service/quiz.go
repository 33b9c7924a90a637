package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/repository"
)

// QuizService picks the words for a quiz round
type QuizService struct {
	wordRepo repository.WordRepository
	timeout  time.Duration
	shuffle  func(n int, swap func(i, j int))
}

// NewQuizService creates a new quiz service
func NewQuizService(wordRepo repository.WordRepository, timeout time.Duration) *QuizService {
	return &QuizService{
		wordRepo: wordRepo,
		timeout:  timeout,
		shuffle:  rand.Shuffle,
	}
}

// SelectQuizSet draws domain.QuizSize random words for the user. The first one is the
// answer, the rest are distractors; options come back in shuffled order.
func (s *QuizService) SelectQuizSet(ctx context.Context, userID int64) (*domain.QuizSet, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	pairs, err := s.wordRepo.ListRandomWords(ctx, userID, domain.QuizSize)
	if err != nil {
		return nil, err
	}
	if len(pairs) < domain.QuizSize {
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientWords, len(pairs), domain.QuizSize)
	}

	answer := pairs[0]
	distractors := make([]string, 0, domain.QuizSize-1)
	for _, p := range pairs[1:domain.QuizSize] {
		distractors = append(distractors, p.Target)
	}

	options := append([]string{answer.Target}, distractors...)
	s.shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &domain.QuizSet{
		Target:      answer.Target,
		Translation: answer.Translation,
		Distractors: distractors,
		Options:     options,
	}, nil
}
