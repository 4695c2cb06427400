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

const subjectColumns = "subject_id, subject_name, slug, description, created_at, updated_at"

// SubjectRepository persists subjects. It exposes only key-value-store
// shaped primitives: get by key, guarded insert, conditional partial
// update, conditional delete, secondary-key lookups, and a paged scan.
type SubjectRepository struct {
	pool *pgxpool.Pool
}

// NewSubjectRepository creates a new SubjectRepository.
func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

// Get fetches a subject by primary key.
func (r *SubjectRepository) Get(ctx context.Context, id string) (*model.Subject, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+subjectColumns+` FROM subjects WHERE subject_id = $1`, id)
	return scanSubject(row)
}

// List returns one page of subjects ordered by primary key, starting after
// afterID. The returned lastKey is non-empty only when the page filled,
// i.e. when a further page may exist.
func (r *SubjectRepository) List(ctx context.Context, limit int, afterID string) ([]model.Subject, string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+subjectColumns+` FROM subjects WHERE subject_id > $1 ORDER BY subject_id LIMIT $2`,
		afterID, limit)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	subjects := []model.Subject{}
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			return nil, "", err
		}
		subjects = append(subjects, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	lastKey := ""
	if len(subjects) == limit && limit > 0 {
		lastKey = subjects[len(subjects)-1].SubjectID
	}
	return subjects, lastKey, nil
}

// FindByName looks a subject up by its exact (case-sensitive) name.
func (r *SubjectRepository) FindByName(ctx context.Context, name string) (*model.Subject, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+subjectColumns+` FROM subjects WHERE subject_name = $1 LIMIT 1`, name)
	return scanSubject(row)
}

// FindBySlug looks a subject up by slug.
func (r *SubjectRepository) FindBySlug(ctx context.Context, slug string) (*model.Subject, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+subjectColumns+` FROM subjects WHERE slug = $1 LIMIT 1`, slug)
	return scanSubject(row)
}

// Insert writes a subject only if its id is not already taken.
// ErrAlreadyExists reports a failed guard.
func (r *SubjectRepository) Insert(ctx context.Context, s *model.Subject) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO subjects (subject_id, subject_name, slug, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (subject_id) DO NOTHING`,
		s.SubjectID, s.SubjectName, s.Slug, s.Description, s.CreatedAt.Time(), s.UpdatedAt.Time())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyExists
	}
	return nil
}

// Update applies a partial update if the subject exists, returning the new
// row. ErrNotFound reports a failed existence guard.
func (r *SubjectRepository) Update(ctx context.Context, id string, patch SubjectPatch) (*model.Subject, error) {
	set := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if patch.SubjectName != nil {
		args = append(args, *patch.SubjectName)
		set = append(set, fmt.Sprintf("subject_name = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}
	args = append(args, patch.UpdatedAt.Time())
	set = append(set, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, id)
	query := fmt.Sprintf("UPDATE subjects SET %s WHERE subject_id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), subjectColumns)

	return scanSubject(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes a subject if it exists.
func (r *SubjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subjects WHERE subject_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSubject(row pgx.Row) (*model.Subject, error) {
	var s model.Subject
	var createdAt, updatedAt time.Time
	err := row.Scan(&s.SubjectID, &s.SubjectName, &s.Slug, &s.Description, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.CreatedAt = model.Timestamp(createdAt.UTC().Truncate(time.Second))
	s.UpdatedAt = model.Timestamp(updatedAt.UTC().Truncate(time.Second))
	return &s, nil
}
