package users

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jobatlas/jobatlas/internal/apperrors"
	"github.com/jobatlas/jobatlas/locale"
	"golang.org/x/crypto/bcrypt"
)

// Field bounds for profile input. Mirrors what the public clients enforce so
// server and client reject the same values.
const (
	MinNameLength     = 2
	MinPasswordLength = 6
	MaxBioLength      = 500
	MaxLocationLength = 100
)

type User struct {
	ID           string        `json:"id"`                 // Unique identifier for the user
	Name         string        `json:"name"`               // Display name
	Email        string        `json:"email"`              // User's email address
	PasswordHash string        `json:"-"`                  // Hashed password - never serialize. Empty for OIDC-only accounts.
	Bio          string        `json:"bio,omitempty"`      // Short free-form biography
	Location     string        `json:"location,omitempty"` // Free-form location string
	Country      string        `json:"country,omitempty"`
	City         string        `json:"city,omitempty"`
	Image        string        `json:"image,omitempty"` // Avatar URL
	Locale       locale.Locale `json:"locale"`          // Persisted locale preference
	CreatedAt    time.Time     `json:"createdAt,omitempty"`
	UpdatedAt    time.Time     `json:"updatedAt,omitempty"`
}

// HasPassword reports whether the account can authenticate with a password.
// Accounts created through an identity provider carry no hash.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// ProfileUpdate is a partial update of the mutable profile fields. Nil
// pointers leave the stored value untouched. Fields outside this struct are
// not writable through profile updates.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`
	Country  *string `json:"country,omitempty"`
	City     *string `json:"city,omitempty"`
	Image    *string `json:"image,omitempty"`
}

// Empty reports whether the update touches no field.
func (p ProfileUpdate) Empty() bool {
	return p.Name == nil && p.Bio == nil && p.Location == nil &&
		p.Country == nil && p.City == nil && p.Image == nil
}

// Apply copies the set fields onto u.
func (p ProfileUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Country != nil {
		u.Country = *p.Country
	}
	if p.City != nil {
		u.City = *p.City
	}
	if p.Image != nil {
		u.Image = *p.Image
	}
}

// Validate checks the update against the field bounds.
func (p ProfileUpdate) Validate() error {
	if p.Name != nil {
		if err := ValidateName(*p.Name); err != nil {
			return err
		}
	}
	if p.Bio != nil && utf8.RuneCountInString(*p.Bio) > MaxBioLength {
		return apperrors.Validation("bio", "must be at most 500 characters")
	}
	if p.Location != nil && utf8.RuneCountInString(*p.Location) > MaxLocationLength {
		return apperrors.Validation("location", "must be at most 100 characters")
	}
	if p.Image != nil && *p.Image != "" {
		if err := validateImageURL(*p.Image); err != nil {
			return err
		}
	}
	return nil
}

// ValidateName checks a display name.
func ValidateName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < MinNameLength {
		return apperrors.Validation("name", "must be at least 2 characters")
	}
	return nil
}

// ValidateEmail performs a light well-formedness check. Deliverability is
// the mail system's problem, not ours.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return apperrors.Validation("email", "must be a valid email address")
	}
	return nil
}

// ValidatePassword checks the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return apperrors.Validation("password", "must be at least 6 characters")
	}
	return nil
}

func validateImageURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperrors.Validation("image", "must be a valid URL")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
