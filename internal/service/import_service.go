package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/cybermcq/mcq-backend/internal/model"
	"github.com/cybermcq/mcq-backend/internal/repository"
)

const maxSlugLen = 60

// ImportService ingests question batches. Rows are processed sequentially
// and independently: one row's failure is recorded and never aborts the
// batch. The import is idempotent only for rows carrying a caller-supplied
// questionId — those re-run as "skipped"; rows with generated ids insert
// fresh questions on every run.
type ImportService struct {
	subjects  SubjectStore
	questions QuestionStore
	quizCache CandidateCache
	log       zerolog.Logger
}

// NewImportService creates a new ImportService.
func NewImportService(subjects SubjectStore, questions QuestionStore, quizCache CandidateCache, log zerolog.Logger) *ImportService {
	return &ImportService{
		subjects:  subjects,
		questions: questions,
		quizCache: quizCache,
		log:       log.With().Str("component", "import_service").Logger(),
	}
}

// Import processes the batch and returns the aggregated report.
func (s *ImportService) Import(ctx context.Context, rows []model.BulkQuestionRow) *model.ImportReport {
	report := &model.ImportReport{
		CreatedSubjects: []string{},
		Results:         []model.RowResult{},
		ErrorDetails:    []string{},
	}
	createdNames := map[string]bool{}
	touchedSubjects := map[string]bool{}

	for i, row := range rows {
		rowNum := i + 1

		if msg := missingRowField(row); msg != "" {
			report.ErrorDetails = append(report.ErrorDetails, fmt.Sprintf("Row %d: Missing field: %s", rowNum, msg))
			continue
		}
		options, ok := validOptions(*row.Options)
		if !ok {
			report.ErrorDetails = append(report.ErrorDetails, fmt.Sprintf("Row %d: options must be a list of 4 non-empty strings", rowNum))
			continue
		}
		if *row.AnswerIndex < 0 || *row.AnswerIndex >= optionCount {
			report.ErrorDetails = append(report.ErrorDetails, fmt.Sprintf("Row %d: answerIndex must be 0..3", rowNum))
			continue
		}
		subjectName := strings.TrimSpace(*row.Subject)
		if subjectName == "" {
			report.ErrorDetails = append(report.ErrorDetails, fmt.Sprintf("Row %d: subject cannot be empty", rowNum))
			continue
		}

		subject, created, err := s.findOrCreateSubject(ctx, subjectName)
		if err != nil {
			report.ErrorDetails = append(report.ErrorDetails, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		if created && !createdNames[subjectName] {
			createdNames[subjectName] = true
			report.CreatedSubjects = append(report.CreatedSubjects, subjectName)
		}

		qid := row.QuestionID
		if qid == "" {
			qid = model.NewID()
		}
		tags := row.Tags
		if tags == nil {
			tags = []string{}
		}
		now := model.Now()
		question := &model.Question{
			QuestionID:  qid,
			Question:    strings.TrimSpace(*row.Question),
			Options:     options,
			AnswerIndex: *row.AnswerIndex,
			Tags:        tags,
			SubjectID:   subject.SubjectID,
			SubjectName: subject.SubjectName,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		switch err := s.questions.Insert(ctx, question); {
		case err == nil:
			touchedSubjects[subject.SubjectID] = true
			report.Results = append(report.Results, model.RowResult{
				QuestionID: qid,
				Status:     model.RowStatusCreated,
				Subject:    subjectName,
			})
		case errors.Is(err, repository.ErrAlreadyExists):
			report.Results = append(report.Results, model.RowResult{
				QuestionID: qid,
				Status:     model.RowStatusSkipped,
				Reason:     "already exists",
				Subject:    subjectName,
			})
		default:
			report.ErrorDetails = append(report.ErrorDetails, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	report.Processed = len(rows)
	report.Errors = len(report.ErrorDetails)
	for _, r := range report.Results {
		if r.Status == model.RowStatusCreated {
			report.Successful++
		} else {
			report.Skipped++
		}
	}

	if len(touchedSubjects) > 0 {
		ids := make([]string, 0, len(touchedSubjects))
		for id := range touchedSubjects {
			ids = append(ids, id)
		}
		s.quizCache.Invalidate(ctx, ids...)
	}

	s.log.Info().
		Int("processed", report.Processed).
		Int("successful", report.Successful).
		Int("skipped", report.Skipped).
		Int("errors", report.Errors).
		Msg("Bulk import finished")
	return report
}

// findOrCreateSubject resolves a subject by exact name, creating it with a
// derived slug when absent. The bool reports whether a create happened.
func (s *ImportService) findOrCreateSubject(ctx context.Context, name string) (*model.Subject, bool, error) {
	existing, err := s.subjects.FindByName(ctx, name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	slug := Slugify(name)
	if _, err := s.subjects.FindBySlug(ctx, slug); err == nil {
		// Slug taken by a differently-named subject; disambiguate.
		slug = fmt.Sprintf("%s-%d", slug, time.Now().Unix())
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	now := model.Now()
	subject := &model.Subject{
		SubjectID:   model.NewID(),
		SubjectName: name,
		Slug:        slug,
		Description: "Questions for " + name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.subjects.Insert(ctx, subject); err != nil {
		return nil, false, err
	}
	return subject, true, nil
}

// missingRowField returns the name of the first absent required field, in
// the documented order, or "" when all are present.
func missingRowField(row model.BulkQuestionRow) string {
	switch {
	case row.Question == nil:
		return "question"
	case row.Options == nil:
		return "options"
	case row.AnswerIndex == nil:
		return "answerIndex"
	case row.Subject == nil:
		return "subject"
	}
	return ""
}

// validOptions checks for exactly 4 options, each non-empty after trimming.
// The stored options keep their original spacing.
func validOptions(options []string) ([]string, bool) {
	if len(options) != optionCount {
		return nil, false
	}
	for _, o := range options {
		if strings.TrimSpace(o) == "" {
			return nil, false
		}
	}
	return options, true
}

// Slugify derives a URL slug: lower-cased, spaces and underscores become
// hyphens, every other character that is not a letter, digit, or hyphen is
// stripped, truncated to 60 characters. Letters and digits are Unicode
// classes, so non-ASCII subject names keep their letters.
func Slugify(name string) string {
	lowered := strings.ToLower(name)
	slug := make([]rune, 0, len(lowered))
	for _, r := range lowered {
		switch {
		case r == ' ' || r == '_':
			slug = append(slug, '-')
		case r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r):
			slug = append(slug, r)
		}
	}
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	return string(slug)
}
