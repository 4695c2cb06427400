package service

import (
	"context"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/cybermcq/mcq-backend/internal/model"
)

const (
	minQuizCount     = 1
	maxQuizCount     = 50
	DefaultQuizCount = 10
)

// QuizService renders randomized quizzes: a uniform sample of the
// candidate questions, each with its options independently shuffled and
// the answer index remapped to follow the correct option.
type QuizService struct {
	questions QuestionStore
	quizCache CandidateCache
	log       zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(questions QuestionStore, quizCache CandidateCache, log zerolog.Logger) *QuizService {
	return &QuizService{
		questions: questions,
		quizCache: quizCache,
		log:       log.With().Str("component", "quiz_service").Logger(),
	}
}

// Compose builds a quiz of min(count, available) questions, count clamped
// to [1,50]. An empty subjectID draws from the whole bank.
func (s *QuizService) Compose(ctx context.Context, count int, subjectID string) (*model.Quiz, error) {
	if count < minQuizCount {
		count = minQuizCount
	}
	if count > maxQuizCount {
		count = maxQuizCount
	}

	candidates, hit := s.quizCache.Get(ctx, subjectID)
	if !hit {
		var err error
		candidates, err = s.questions.ListForQuiz(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		s.quizCache.Set(ctx, subjectID, candidates)
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	selected := sampleQuestions(candidates, count, rng)

	prepared := make([]model.QuizQuestion, len(selected))
	for i, q := range selected {
		prepared[i] = shuffleOptions(q, rng)
	}

	return &model.Quiz{Questions: prepared, Total: len(prepared)}, nil
}

// sampleQuestions picks count items uniformly without replacement. When
// the pool is not larger than count, all items are returned in pool order.
// The input slice is never mutated (it may be shared via the cache).
func sampleQuestions(pool []model.QuizQuestion, count int, rng *rand.Rand) []model.QuizQuestion {
	if len(pool) <= count {
		out := make([]model.QuizQuestion, len(pool))
		copy(out, pool)
		return out
	}

	idx := rng.Perm(len(pool))[:count]
	out := make([]model.QuizQuestion, count)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

// shuffleOptions reorders a question's options by a fresh random
// permutation and remaps the answer index to the correct option's new
// position. The input question's options slice is left untouched.
func shuffleOptions(q model.QuizQuestion, rng *rand.Rand) model.QuizQuestion {
	perm := rng.Perm(len(q.Options))

	shuffled := make([]string, len(q.Options))
	newAnswer := q.AnswerIndex
	for newPos, oldPos := range perm {
		shuffled[newPos] = q.Options[oldPos]
		if oldPos == q.AnswerIndex {
			newAnswer = newPos
		}
	}

	q.Options = shuffled
	q.AnswerIndex = newAnswer
	return q
}
