// Package postgresrepo is the Postgres-backed users.Repo.
package postgresrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jobatlas/jobatlas/internal/apperrors"
	"github.com/jobatlas/jobatlas/locale"
	"github.com/jobatlas/jobatlas/users"
)

const uniqueViolation = "23505"

type Repo struct {
	db *sql.DB
}

var _ users.Repo = (*Repo)(nil)

func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const userColumns = `id, name, email, COALESCE(password_hash, ''), COALESCE(bio, ''),
	COALESCE(location, ''), COALESCE(country, ''), COALESCE(city, ''),
	COALESCE(image, ''), locale, created_at, updated_at`

func scanUser(row *sql.Row) (*users.User, error) {
	user := &users.User{}
	var loc string
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Bio, &user.Location, &user.Country, &user.City, &user.Image,
		&loc, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	user.Locale = locale.Parse(loc)
	return user, nil
}

func (r *Repo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query :=
		`INSERT INTO users (id, name, email, password_hash, locale)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		 RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, strings.ToLower(user.Email), user.PasswordHash, string(user.Locale))

	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperrors.ErrAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*users.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, strings.ToLower(email)))
}

// UpdateProfile writes only the fields set in upd. The SET list is built
// from a fixed allow-list; concurrent updates to different fields do not
// clobber each other.
func (r *Repo) UpdateProfile(ctx context.Context, id string, upd users.ProfileUpdate) (*users.User, error) {
	if upd.Empty() {
		return r.GetByID(ctx, id)
	}

	set := make([]string, 0, 6)
	args := make([]interface{}, 0, 7)
	add := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		set = append(set, fmt.Sprintf("%s = NULLIF($%d, '')", column, len(args)))
	}
	if upd.Name != nil {
		args = append(args, *upd.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	add("bio", upd.Bio)
	add("location", upd.Location)
	add("country", upd.Country)
	add("city", upd.City)
	add("image", upd.Image)

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE users SET %s, updated_at = now() WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), userColumns)

	return scanUser(r.db.QueryRowContext(ctx, query, args...))
}

func (r *Repo) UpdateLocale(ctx context.Context, id string, loc locale.Locale) error {
	query := `UPDATE users SET locale = $1, updated_at = now() WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, string(loc), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
