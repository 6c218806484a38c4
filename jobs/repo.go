package jobs

import "context"

// Repo reads the catalog. Implementations map a missing record to
// apperrors.ErrNotFound.
type Repo interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, code string) (*Category, error)
	ListJobsByCategory(ctx context.Context, categoryCode string) ([]Job, error)
	GetJob(ctx context.Context, code string) (*Job, error)
}
