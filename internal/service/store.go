package service

import (
	"context"

	"github.com/cybermcq/mcq-backend/internal/cache"
	"github.com/cybermcq/mcq-backend/internal/model"
	"github.com/cybermcq/mcq-backend/internal/repository"
)

// SubjectStore is the persistence surface the subject service needs. The
// pgx repository implements it in production; tests use in-memory fakes.
type SubjectStore interface {
	Get(ctx context.Context, id string) (*model.Subject, error)
	List(ctx context.Context, limit int, afterID string) ([]model.Subject, string, error)
	FindByName(ctx context.Context, name string) (*model.Subject, error)
	FindBySlug(ctx context.Context, slug string) (*model.Subject, error)
	Insert(ctx context.Context, s *model.Subject) error
	Update(ctx context.Context, id string, patch repository.SubjectPatch) (*model.Subject, error)
	Delete(ctx context.Context, id string) error
}

// QuestionStore is the persistence surface for questions.
type QuestionStore interface {
	Get(ctx context.Context, id string) (*model.Question, error)
	List(ctx context.Context, limit int, afterID, subjectID string) ([]model.Question, string, error)
	AnyForSubject(ctx context.Context, subjectID string) (bool, error)
	ListForQuiz(ctx context.Context, subjectID string) ([]model.QuizQuestion, error)
	Insert(ctx context.Context, q *model.Question) error
	Update(ctx context.Context, id string, patch repository.QuestionPatch) (*model.Question, error)
	Delete(ctx context.Context, id string) error
}

// CandidateCache caches quiz-candidate sets per subject (empty subject id
// = the whole bank). The Redis-backed cache implements it in production;
// tests use an in-memory fake to assert invalidation behavior.
type CandidateCache interface {
	Get(ctx context.Context, subjectID string) ([]model.QuizQuestion, bool)
	Set(ctx context.Context, subjectID string, items []model.QuizQuestion)
	Invalidate(ctx context.Context, subjectIDs ...string)
}

var (
	_ SubjectStore   = (*repository.SubjectRepository)(nil)
	_ QuestionStore  = (*repository.QuestionRepository)(nil)
	_ CandidateCache = (*cache.QuizCache)(nil)
)
