// Package account implements registration, credential verification, and
// profile read/update on top of the users store.
package account

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jobatlas/jobatlas/internal/apperrors"
	"github.com/jobatlas/jobatlas/locale"
	"github.com/jobatlas/jobatlas/users"
	"github.com/pkg/errors"
)

// dummyHash is compared against when authentication targets an unknown email
// or a password-less account, so both failure paths cost one bcrypt check.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service provides account operations. Store failures are wrapped, domain
// failures surface as apperrors sentinels or ValidationErrors.
type Service struct {
	users   users.Repo
	nowTime func() time.Time // nowTime function (injectable for testing)
	newID   func() string
}

// ServiceOption modifies the Service instance.
type ServiceOption func(*Service)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

// WithIDFunc sets the ID generator (primarily for testing)
func WithIDFunc(idFunc func() string) ServiceOption {
	return func(s *Service) {
		s.newID = idFunc
	}
}

// NewService initializes a Service with its required dependencies.
func NewService(userRepo users.Repo, options ...ServiceOption) (*Service, error) {
	if userRepo == nil {
		return nil, errors.New("[NewService] users repo is required")
	}

	s := &Service{
		users:   userRepo,
		nowTime: time.Now,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Register validates the input, hashes the password, and persists a new
// user. A duplicate email yields apperrors.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, name, email, password string, loc locale.Locale) (*users.User, error) {
	if err := users.ValidateName(name); err != nil {
		return nil, err
	}
	if err := users.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := users.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := users.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "[Register] hash password")
	}

	user := &users.User{
		ID:           s.newID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Locale:       loc,
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists
		}
		return nil, errors.Wrap(err, "[Register] users.Create")
	}
	return created, nil
}

// Authenticate verifies email/password credentials. It fails closed with
// apperrors.ErrInvalidCredentials for an unknown email, a password-less
// account, and a wrong password alike; callers cannot tell them apart.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*users.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			users.CheckPasswordHash(password, dummyHash)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "[Authenticate] users.GetByEmail")
	}

	hash := user.PasswordHash
	if !user.HasPassword() {
		hash = dummyHash
	}
	if !users.CheckPasswordHash(password, hash) || !user.HasPassword() {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// GetProfile returns the profile for userID.
func (s *Service) GetProfile(ctx context.Context, userID string) (*users.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, errors.Wrap(err, "[GetProfile] users.GetByID")
	}
	return user, nil
}

// UpdateProfile validates and applies a partial profile update. Only the
// allow-listed fields in users.ProfileUpdate are writable.
func (s *Service) UpdateProfile(ctx context.Context, userID string, upd users.ProfileUpdate) (*users.User, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.UpdateProfile(ctx, userID, upd)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, errors.Wrap(err, "[UpdateProfile] users.UpdateProfile")
	}
	return user, nil
}

// UpdateLocale persists the user's locale preference.
func (s *Service) UpdateLocale(ctx context.Context, userID string, loc locale.Locale) error {
	if !locale.IsSupported(string(loc)) {
		return apperrors.Validation("locale", "unsupported locale")
	}
	if err := s.users.UpdateLocale(ctx, userID, loc); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return errors.Wrap(err, "[UpdateLocale] users.UpdateLocale")
	}
	return nil
}

// GetOrCreateByEmail returns the account for an identity-provider sign-in,
// creating a password-less record on first contact.
func (s *Service) GetOrCreateByEmail(ctx context.Context, email, name string, loc locale.Locale) (*users.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, errors.Wrap(err, "[GetOrCreateByEmail] users.GetByEmail")
	}

	if name == "" {
		name = email
	}
	created, err := s.users.Create(ctx, &users.User{
		ID:     s.newID(),
		Name:   name,
		Email:  email,
		Locale: loc,
	})
	if err != nil {
		// Lost a race with a concurrent first sign-in; read the winner.
		if apperrors.Is(err, apperrors.ErrAlreadyExists) {
			return s.users.GetByEmail(ctx, email)
		}
		return nil, errors.Wrap(err, "[GetOrCreateByEmail] users.Create")
	}
	return created, nil
}
