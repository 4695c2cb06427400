package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cybermcq/mcq-backend/internal/model"
)

const questionColumns = "question_id, question, options, answer_index, tags, subject_id, subject_name, created_at, updated_at"

// QuestionRepository persists questions, shaped like SubjectRepository.
// questions(subject_id) is indexed; subject-filtered reads go through it.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// Get fetches a question by primary key.
func (r *QuestionRepository) Get(ctx context.Context, id string) (*model.Question, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE question_id = $1`, id)
	return scanQuestion(row)
}

// List returns one page of questions ordered by primary key, optionally
// restricted to one subject. Same lastKey convention as subjects.
func (r *QuestionRepository) List(ctx context.Context, limit int, afterID, subjectID string) ([]model.Question, string, error) {
	var rows pgx.Rows
	var err error
	if subjectID != "" {
		rows, err = r.pool.Query(ctx,
			`SELECT `+questionColumns+` FROM questions
			 WHERE subject_id = $1 AND question_id > $2 ORDER BY question_id LIMIT $3`,
			subjectID, afterID, limit)
	} else {
		rows, err = r.pool.Query(ctx,
			`SELECT `+questionColumns+` FROM questions
			 WHERE question_id > $1 ORDER BY question_id LIMIT $2`,
			afterID, limit)
	}
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, "", err
		}
		questions = append(questions, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	lastKey := ""
	if len(questions) == limit && limit > 0 {
		lastKey = questions[len(questions)-1].QuestionID
	}
	return questions, lastKey, nil
}

// AnyForSubject reports whether at least one question references the
// subject. Used as the delete gate; one row suffices.
func (r *QuestionRepository) AnyForSubject(ctx context.Context, subjectID string) (bool, error) {
	var one int
	err := r.pool.QueryRow(ctx,
		`SELECT 1 FROM questions WHERE subject_id = $1 LIMIT 1`, subjectID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListForQuiz returns the quiz-play projection of every candidate question,
// optionally restricted to one subject. No pagination: quiz sampling needs
// the full candidate set.
func (r *QuestionRepository) ListForQuiz(ctx context.Context, subjectID string) ([]model.QuizQuestion, error) {
	var rows pgx.Rows
	var err error
	if subjectID != "" {
		rows, err = r.pool.Query(ctx,
			`SELECT question_id, question, options, answer_index FROM questions WHERE subject_id = $1`,
			subjectID)
	} else {
		rows, err = r.pool.Query(ctx,
			`SELECT question_id, question, options, answer_index FROM questions`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.QuizQuestion{}
	for rows.Next() {
		var q model.QuizQuestion
		if err := rows.Scan(&q.QuestionID, &q.Question, &q.Options, &q.AnswerIndex); err != nil {
			return nil, err
		}
		items = append(items, q)
	}
	return items, rows.Err()
}

// Insert writes a question only if its id is not already taken.
// ErrAlreadyExists reports a failed guard (the bulk importer's skip case).
func (r *QuestionRepository) Insert(ctx context.Context, q *model.Question) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO questions (question_id, question, options, answer_index, tags, subject_id, subject_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (question_id) DO NOTHING`,
		q.QuestionID, q.Question, q.Options, q.AnswerIndex, q.Tags, q.SubjectID, q.SubjectName,
		q.CreatedAt.Time(), q.UpdatedAt.Time())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyExists
	}
	return nil
}

// Update applies a partial update if the question exists, returning the
// new row.
func (r *QuestionRepository) Update(ctx context.Context, id string, patch QuestionPatch) (*model.Question, error) {
	set := make([]string, 0, 7)
	args := make([]any, 0, 8)

	if patch.Question != nil {
		args = append(args, *patch.Question)
		set = append(set, fmt.Sprintf("question = $%d", len(args)))
	}
	if patch.Options != nil {
		args = append(args, *patch.Options)
		set = append(set, fmt.Sprintf("options = $%d", len(args)))
	}
	if patch.AnswerIndex != nil {
		args = append(args, *patch.AnswerIndex)
		set = append(set, fmt.Sprintf("answer_index = $%d", len(args)))
	}
	if patch.Tags != nil {
		args = append(args, *patch.Tags)
		set = append(set, fmt.Sprintf("tags = $%d", len(args)))
	}
	if patch.SubjectID != nil {
		args = append(args, *patch.SubjectID)
		set = append(set, fmt.Sprintf("subject_id = $%d", len(args)))
	}
	if patch.SubjectName != nil {
		args = append(args, *patch.SubjectName)
		set = append(set, fmt.Sprintf("subject_name = $%d", len(args)))
	}
	args = append(args, patch.UpdatedAt.Time())
	set = append(set, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, id)
	query := fmt.Sprintf("UPDATE questions SET %s WHERE question_id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), questionColumns)

	return scanQuestion(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes a question if it exists.
func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE question_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanQuestion(row pgx.Row) (*model.Question, error) {
	var q model.Question
	var createdAt, updatedAt time.Time
	err := row.Scan(&q.QuestionID, &q.Question, &q.Options, &q.AnswerIndex, &q.Tags,
		&q.SubjectID, &q.SubjectName, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if q.Tags == nil {
		q.Tags = []string{}
	}
	q.CreatedAt = model.Timestamp(createdAt.UTC().Truncate(time.Second))
	q.UpdatedAt = model.Timestamp(updatedAt.UTC().Truncate(time.Second))
	return &q, nil
}
