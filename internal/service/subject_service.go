package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cybermcq/mcq-backend/internal/model"
	"github.com/cybermcq/mcq-backend/internal/repository"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// SubjectService implements subject CRUD with case-sensitive name
// uniqueness. Uniqueness is check-then-act over the name index plus the
// store's guarded insert; concurrent creates can both pass the pre-check,
// and the one losing the guarded write gets the conflict error.
type SubjectService struct {
	subjects  SubjectStore
	questions QuestionStore
	log       zerolog.Logger
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(subjects SubjectStore, questions QuestionStore, log zerolog.Logger) *SubjectService {
	return &SubjectService{
		subjects:  subjects,
		questions: questions,
		log:       log.With().Str("component", "subject_service").Logger(),
	}
}

// List returns one page of subjects.
func (s *SubjectService) List(ctx context.Context, limit int, token string) (*model.SubjectPage, error) {
	limit = clampPageSize(limit)

	afterID := ""
	if token != "" {
		var err error
		afterID, err = repository.DecodeSubjectToken(token)
		if err != nil {
			return nil, ErrBadPageToken
		}
	}

	items, lastKey, err := s.subjects.List(ctx, limit, afterID)
	if err != nil {
		return nil, err
	}

	page := &model.SubjectPage{Items: items}
	if lastKey != "" {
		next := repository.EncodeSubjectToken(lastKey)
		page.NextToken = &next
	}
	return page, nil
}

// Get fetches one subject; repository.ErrNotFound when absent.
func (s *SubjectService) Get(ctx context.Context, id string) (*model.Subject, error) {
	return s.subjects.Get(ctx, id)
}

// Create inserts a subject after trimming and uniqueness-checking the name.
func (s *SubjectService) Create(ctx context.Context, req model.CreateSubjectRequest) (*model.Subject, error) {
	name := strings.TrimSpace(req.SubjectName)
	if name == "" {
		return nil, ErrMissingSubjectName
	}

	if err := s.checkNameFree(ctx, name, ""); err != nil {
		return nil, err
	}

	id := req.SubjectID
	if id == "" {
		id = model.NewID()
	}
	now := model.Now()
	subject := &model.Subject{
		SubjectID:   id,
		SubjectName: name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.subjects.Insert(ctx, subject); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			// Lost the guarded write to a concurrent create.
			return nil, ErrSubjectNameTaken
		}
		return nil, err
	}

	s.log.Info().Str("subject_id", id).Str("name", name).Msg("Subject created")
	return subject, nil
}

// Update applies a partial update. A rename re-runs the uniqueness check
// excluding the subject's own id.
func (s *SubjectService) Update(ctx context.Context, id string, req model.UpdateSubjectRequest) (*model.Subject, error) {
	if req.SubjectName == nil && req.Description == nil {
		return nil, ErrNoUpdatableFields
	}

	patch := repository.SubjectPatch{Description: req.Description, UpdatedAt: model.Now()}
	if req.SubjectName != nil {
		name := strings.TrimSpace(*req.SubjectName)
		if name == "" {
			return nil, ErrMissingSubjectName
		}
		if err := s.checkNameFree(ctx, name, id); err != nil {
			return nil, err
		}
		patch.SubjectName = &name
	}

	return s.subjects.Update(ctx, id, patch)
}

// Delete removes a subject unless any question still references it.
func (s *SubjectService) Delete(ctx context.Context, id string) error {
	inUse, err := s.questions.AnyForSubject(ctx, id)
	if err != nil {
		return fmt.Errorf("check subject references: %w", err)
	}
	if inUse {
		return ErrSubjectHasQuestions
	}
	return s.subjects.Delete(ctx, id)
}

// checkNameFree errors when another live subject already holds the name.
func (s *SubjectService) checkNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.subjects.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.SubjectID != selfID {
		return ErrSubjectNameTaken
	}
	return nil
}

func clampPageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
