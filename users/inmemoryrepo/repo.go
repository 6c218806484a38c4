// Package inmemoryrepo is a map-backed users.Repo used by tests and by
// development mode when no database is configured.
package inmemoryrepo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jobatlas/jobatlas/internal/apperrors"
	"github.com/jobatlas/jobatlas/locale"
	"github.com/jobatlas/jobatlas/users"
)

type Repo struct {
	mu      sync.RWMutex
	byID    map[string]users.User
	byEmail map[string]string // lowercased email -> user ID
}

var _ users.Repo = (*Repo)(nil)

func New() *Repo {
	return &Repo{
		byID:    make(map[string]users.User),
		byEmail: make(map[string]string),
	}
}

func (r *Repo) Create(_ context.Context, user *users.User) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, ok := r.byEmail[key]; ok {
		return nil, apperrors.ErrAlreadyExists
	}

	stored := *user
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.byID[stored.ID] = stored
	r.byEmail[key] = stored.ID

	out := stored
	return &out, nil
}

func (r *Repo) GetByID(_ context.Context, id string) (*users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := user
	return &out, nil
}

func (r *Repo) GetByEmail(_ context.Context, email string) (*users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := r.byID[id]
	return &out, nil
}

func (r *Repo) UpdateProfile(_ context.Context, id string, upd users.ProfileUpdate) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	upd.Apply(&user)
	user.UpdatedAt = time.Now()
	r.byID[id] = user

	out := user
	return &out, nil
}

func (r *Repo) UpdateLocale(_ context.Context, id string, loc locale.Locale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	user.Locale = loc
	user.UpdatedAt = time.Now()
	r.byID[id] = user
	return nil
}
