// Package postgresrepo is the Postgres-backed jobs.Repo.
package postgresrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jobatlas/jobatlas/internal/apperrors"
	"github.com/jobatlas/jobatlas/jobs"
)

type Repo struct {
	db *sql.DB
}

var _ jobs.Repo = (*Repo)(nil)

func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const categoryColumns = `id, code, name_en, name_fr, name_pt,
	COALESCE(description_en, ''), COALESCE(description_fr, ''), COALESCE(description_pt, '')`

const jobColumns = `j.id, j.code, c.code, j.title_en, j.title_fr, j.title_pt,
	j.is_informal, j.is_emerging, j.is_agri`

func scanCategory(row interface{ Scan(...interface{}) error }) (*jobs.Category, error) {
	c := &jobs.Category{}
	err := row.Scan(&c.ID, &c.Code, &c.Name.EN, &c.Name.FR, &c.Name.PT,
		&c.Description.EN, &c.Description.FR, &c.Description.PT)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func scanJob(row interface{ Scan(...interface{}) error }) (*jobs.Job, error) {
	j := &jobs.Job{}
	err := row.Scan(&j.ID, &j.Code, &j.CategoryCode, &j.Title.EN, &j.Title.FR, &j.Title.PT,
		&j.IsInformal, &j.IsEmerging, &j.IsAgri)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return j, nil
}

func (r *Repo) ListCategories(ctx context.Context) ([]jobs.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM job_categories ORDER BY code`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var categories []jobs.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return categories, nil
}

func (r *Repo) GetCategory(ctx context.Context, code string) (*jobs.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM job_categories WHERE code = $1`
	return scanCategory(r.db.QueryRowContext(ctx, query, code))
}

func (r *Repo) ListJobsByCategory(ctx context.Context, categoryCode string) ([]jobs.Job, error) {
	query := `SELECT ` + jobColumns + `
		 FROM jobs j
		 JOIN job_categories c ON c.id = j.category_id
		 WHERE c.code = $1
		 ORDER BY j.code`

	rows, err := r.db.QueryContext(ctx, query, categoryCode)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []jobs.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *Repo) GetJob(ctx context.Context, code string) (*jobs.Job, error) {
	query := `SELECT ` + jobColumns + `
		 FROM jobs j
		 JOIN job_categories c ON c.id = j.category_id
		 WHERE j.code = $1`
	return scanJob(r.db.QueryRowContext(ctx, query, code))
}
