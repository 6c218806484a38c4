package users

import (
	"context"

	"github.com/jobatlas/jobatlas/locale"
)

// Repo is the persistent store for user records. Implementations map a
// duplicate email on Create to apperrors.ErrAlreadyExists and a missing
// record to apperrors.ErrNotFound.
type Repo interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// UpdateProfile writes only the fields set in upd and returns the
	// resulting record. Last write wins per field.
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*User, error)
	UpdateLocale(ctx context.Context, id string, loc locale.Locale) error
}
