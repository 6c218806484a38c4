// Package inmemoryrepo is a jobs.Repo preloaded with the seed catalog,
// used by tests and by development mode when no database is configured.
package inmemoryrepo

import (
	"context"

	"github.com/jobatlas/jobatlas/internal/apperrors"
	"github.com/jobatlas/jobatlas/jobs"
)

type Repo struct {
	categories []jobs.Category
	jobs       []jobs.Job
}

var _ jobs.Repo = (*Repo)(nil)

// New returns a repo holding the bundled seed catalog.
func New() *Repo {
	return &Repo{categories: seedCategories, jobs: seedJobs}
}

func (r *Repo) ListCategories(_ context.Context) ([]jobs.Category, error) {
	out := make([]jobs.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *Repo) GetCategory(_ context.Context, code string) (*jobs.Category, error) {
	for _, c := range r.categories {
		if c.Code == code {
			out := c
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *Repo) ListJobsByCategory(_ context.Context, categoryCode string) ([]jobs.Job, error) {
	var out []jobs.Job
	for _, j := range r.jobs {
		if j.CategoryCode == categoryCode {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *Repo) GetJob(_ context.Context, code string) (*jobs.Job, error) {
	for _, j := range r.jobs {
		if j.Code == code {
			out := j
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}
