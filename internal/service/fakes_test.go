package service

import (
	"context"
	"sort"

	"github.com/cybermcq/mcq-backend/internal/model"
	"github.com/cybermcq/mcq-backend/internal/repository"
)

// In-memory stores mirroring the pgx repositories' contract: guarded
// inserts, patch updates, keyset pagination ordered by id.

type fakeSubjectStore struct {
	subjects map[string]model.Subject
}

func newFakeSubjectStore() *fakeSubjectStore {
	return &fakeSubjectStore{subjects: map[string]model.Subject{}}
}

func (f *fakeSubjectStore) Get(_ context.Context, id string) (*model.Subject, error) {
	s, ok := f.subjects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (f *fakeSubjectStore) sortedIDs() []string {
	ids := make([]string, 0, len(f.subjects))
	for id := range f.subjects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (f *fakeSubjectStore) List(_ context.Context, limit int, afterID string) ([]model.Subject, string, error) {
	var items []model.Subject
	for _, id := range f.sortedIDs() {
		if afterID != "" && id <= afterID {
			continue
		}
		items = append(items, f.subjects[id])
		if len(items) == limit {
			return items, id, nil
		}
	}
	return items, "", nil
}

func (f *fakeSubjectStore) FindByName(_ context.Context, name string) (*model.Subject, error) {
	for _, id := range f.sortedIDs() {
		if s := f.subjects[id]; s.SubjectName == name {
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSubjectStore) FindBySlug(_ context.Context, slug string) (*model.Subject, error) {
	for _, id := range f.sortedIDs() {
		if s := f.subjects[id]; s.Slug == slug {
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSubjectStore) Insert(_ context.Context, s *model.Subject) error {
	if _, ok := f.subjects[s.SubjectID]; ok {
		return repository.ErrAlreadyExists
	}
	f.subjects[s.SubjectID] = *s
	return nil
}

func (f *fakeSubjectStore) Update(_ context.Context, id string, patch repository.SubjectPatch) (*model.Subject, error) {
	s, ok := f.subjects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.SubjectName != nil {
		s.SubjectName = *patch.SubjectName
	}
	if patch.Description != nil {
		s.Description = *patch.Description
	}
	s.UpdatedAt = patch.UpdatedAt
	f.subjects[id] = s
	return &s, nil
}

func (f *fakeSubjectStore) Delete(_ context.Context, id string) error {
	if _, ok := f.subjects[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.subjects, id)
	return nil
}

type fakeQuestionStore struct {
	questions map[string]model.Question
}

func newFakeQuestionStore() *fakeQuestionStore {
	return &fakeQuestionStore{questions: map[string]model.Question{}}
}

func (f *fakeQuestionStore) Get(_ context.Context, id string) (*model.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &q, nil
}

func (f *fakeQuestionStore) sortedIDs() []string {
	ids := make([]string, 0, len(f.questions))
	for id := range f.questions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (f *fakeQuestionStore) List(_ context.Context, limit int, afterID, subjectID string) ([]model.Question, string, error) {
	var items []model.Question
	for _, id := range f.sortedIDs() {
		if afterID != "" && id <= afterID {
			continue
		}
		q := f.questions[id]
		if subjectID != "" && q.SubjectID != subjectID {
			continue
		}
		items = append(items, q)
		if len(items) == limit {
			return items, id, nil
		}
	}
	return items, "", nil
}

func (f *fakeQuestionStore) AnyForSubject(_ context.Context, subjectID string) (bool, error) {
	for _, q := range f.questions {
		if q.SubjectID == subjectID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeQuestionStore) ListForQuiz(_ context.Context, subjectID string) ([]model.QuizQuestion, error) {
	var items []model.QuizQuestion
	for _, id := range f.sortedIDs() {
		q := f.questions[id]
		if subjectID != "" && q.SubjectID != subjectID {
			continue
		}
		items = append(items, model.QuizQuestion{
			QuestionID:  q.QuestionID,
			Question:    q.Question,
			Options:     q.Options,
			AnswerIndex: q.AnswerIndex,
		})
	}
	return items, nil
}

func (f *fakeQuestionStore) Insert(_ context.Context, q *model.Question) error {
	if _, ok := f.questions[q.QuestionID]; ok {
		return repository.ErrAlreadyExists
	}
	f.questions[q.QuestionID] = *q
	return nil
}

func (f *fakeQuestionStore) Update(_ context.Context, id string, patch repository.QuestionPatch) (*model.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Question != nil {
		q.Question = *patch.Question
	}
	if patch.Options != nil {
		q.Options = *patch.Options
	}
	if patch.AnswerIndex != nil {
		q.AnswerIndex = *patch.AnswerIndex
	}
	if patch.Tags != nil {
		q.Tags = *patch.Tags
	}
	if patch.SubjectID != nil {
		q.SubjectID = *patch.SubjectID
	}
	if patch.SubjectName != nil {
		q.SubjectName = *patch.SubjectName
	}
	q.UpdatedAt = patch.UpdatedAt
	f.questions[id] = q
	return &q, nil
}

func (f *fakeQuestionStore) Delete(_ context.Context, id string) error {
	if _, ok := f.questions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.questions, id)
	return nil
}

// fakeQuizCache mirrors the Redis cache's contract: entries keyed by
// subject id ("" = the whole bank), Invalidate drops the named subjects
// plus the all-subjects entry.
type fakeQuizCache struct {
	entries     map[string][]model.QuizQuestion
	invalidated []string
}

func newFakeQuizCache() *fakeQuizCache {
	return &fakeQuizCache{entries: map[string][]model.QuizQuestion{}}
}

func (f *fakeQuizCache) Get(_ context.Context, subjectID string) ([]model.QuizQuestion, bool) {
	items, ok := f.entries[subjectID]
	return items, ok
}

func (f *fakeQuizCache) Set(_ context.Context, subjectID string, items []model.QuizQuestion) {
	f.entries[subjectID] = items
}

func (f *fakeQuizCache) Invalidate(_ context.Context, subjectIDs ...string) {
	delete(f.entries, "")
	for _, id := range subjectIDs {
		if id != "" {
			delete(f.entries, id)
			f.invalidated = append(f.invalidated, id)
		}
	}
}

var (
	_ SubjectStore   = (*fakeSubjectStore)(nil)
	_ QuestionStore  = (*fakeQuestionStore)(nil)
	_ CandidateCache = (*fakeQuizCache)(nil)
)
