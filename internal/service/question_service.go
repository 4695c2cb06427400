package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/cybermcq/mcq-backend/internal/model"
	"github.com/cybermcq/mcq-backend/internal/repository"
)

const optionCount = 4

// QuestionService implements question CRUD. Every write resolves the
// referenced subject and stores a snapshot of its name alongside the
// question; the snapshot is refreshed whenever subjectId changes but is
// deliberately left stale if the subject is renamed afterwards.
type QuestionService struct {
	questions QuestionStore
	subjects  SubjectStore
	quizCache CandidateCache
	log       zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questions QuestionStore, subjects SubjectStore, quizCache CandidateCache, log zerolog.Logger) *QuestionService {
	return &QuestionService{
		questions: questions,
		subjects:  subjects,
		quizCache: quizCache,
		log:       log.With().Str("component", "question_service").Logger(),
	}
}

// List returns one page of questions, optionally for a single subject.
func (s *QuestionService) List(ctx context.Context, limit int, token, subjectID string) (*model.QuestionPage, error) {
	limit = clampPageSize(limit)

	afterID := ""
	if token != "" {
		var err error
		afterID, err = repository.DecodeQuestionToken(token)
		if err != nil {
			return nil, ErrBadPageToken
		}
	}

	items, lastKey, err := s.questions.List(ctx, limit, afterID, subjectID)
	if err != nil {
		return nil, err
	}

	page := &model.QuestionPage{Items: items}
	if lastKey != "" {
		next := repository.EncodeQuestionToken(lastKey)
		page.NextToken = &next
	}
	return page, nil
}

// Get fetches one question; repository.ErrNotFound when absent.
func (s *QuestionService) Get(ctx context.Context, id string) (*model.Question, error) {
	return s.questions.Get(ctx, id)
}

// Create validates shape, resolves the subject, and inserts.
func (s *QuestionService) Create(ctx context.Context, req model.CreateQuestionRequest) (*model.Question, error) {
	if len(req.Options) != optionCount {
		return nil, ErrBadOptions
	}
	if req.AnswerIndex == nil || *req.AnswerIndex < 0 || *req.AnswerIndex >= optionCount {
		return nil, ErrBadAnswerIndex
	}

	subject, err := s.resolveSubject(ctx, req.SubjectID)
	if err != nil {
		return nil, err
	}

	id := req.QuestionID
	if id == "" {
		id = model.NewID()
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	now := model.Now()
	question := &model.Question{
		QuestionID:  id,
		Question:    req.Question,
		Options:     req.Options,
		AnswerIndex: *req.AnswerIndex,
		Tags:        tags,
		SubjectID:   subject.SubjectID,
		SubjectName: subject.SubjectName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.questions.Insert(ctx, question); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrQuestionIDTaken
		}
		return nil, err
	}

	s.quizCache.Invalidate(ctx, subject.SubjectID)
	return question, nil
}

// Update applies a partial update, re-validating any supplied shape fields.
// A subjectId change refreshes the denormalized subjectName in the same
// write.
func (s *QuestionService) Update(ctx context.Context, id string, req model.UpdateQuestionRequest) (*model.Question, error) {
	if req.Question == nil && req.Options == nil && req.AnswerIndex == nil && req.Tags == nil && req.SubjectID == nil {
		return nil, ErrNoUpdatableFields
	}

	if req.Options != nil && len(*req.Options) != optionCount {
		return nil, ErrBadOptions
	}
	if req.AnswerIndex != nil && (*req.AnswerIndex < 0 || *req.AnswerIndex >= optionCount) {
		return nil, ErrBadAnswerIndex
	}

	patch := repository.QuestionPatch{
		Question:    req.Question,
		Options:     req.Options,
		AnswerIndex: req.AnswerIndex,
		Tags:        req.Tags,
		UpdatedAt:   model.Now(),
	}
	oldSubjectID := ""
	if req.SubjectID != nil {
		// Read the current row first so a re-home can drop the former
		// subject's cached candidate set too.
		current, err := s.questions.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		oldSubjectID = current.SubjectID

		subject, err := s.resolveSubject(ctx, *req.SubjectID)
		if err != nil {
			return nil, err
		}
		patch.SubjectID = &subject.SubjectID
		patch.SubjectName = &subject.SubjectName
	}

	updated, err := s.questions.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if oldSubjectID != "" && oldSubjectID != updated.SubjectID {
		s.quizCache.Invalidate(ctx, oldSubjectID, updated.SubjectID)
	} else {
		s.quizCache.Invalidate(ctx, updated.SubjectID)
	}
	return updated, nil
}

// Delete removes a question. No cascading side effects.
func (s *QuestionService) Delete(ctx context.Context, id string) error {
	// Read first so the owning subject's cached candidate set can be
	// dropped along with the shared one.
	question, err := s.questions.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.questions.Delete(ctx, id); err != nil {
		return err
	}

	s.quizCache.Invalidate(ctx, question.SubjectID)
	return nil
}

func (s *QuestionService) resolveSubject(ctx context.Context, subjectID string) (*model.Subject, error) {
	subject, err := s.subjects.Get(ctx, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidSubjectID
		}
		return nil, err
	}
	return subject, nil
}
