package account_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jobatlas/jobatlas/account"
	"github.com/jobatlas/jobatlas/internal/apperrors"
	"github.com/jobatlas/jobatlas/internal/utils"
	"github.com/jobatlas/jobatlas/locale"
	"github.com/jobatlas/jobatlas/users"
	"github.com/jobatlas/jobatlas/users/inmemoryrepo"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *account.Service {
	t.Helper()
	svc, err := account.NewService(inmemoryrepo.New())
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresRepo(t *testing.T) {
	_, err := account.NewService(nil)
	require.Error(t, err)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user with a hashed password", func(t *testing.T) {
		svc := newService(t)
		user, err := svc.Register(ctx, "Jo", "a@b.com", "secret1", locale.English)
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.Equal(t, "Jo", user.Name)
		require.NotEqual(t, "secret1", user.PasswordHash)
		require.True(t, users.CheckPasswordHash("secret1", user.PasswordHash))
	})

	t.Run("duplicate email is rejected regardless of other fields", func(t *testing.T) {
		svc := newService(t)
		_, err := svc.Register(ctx, "Jo", "a@b.com", "secret1", locale.English)
		require.NoError(t, err)

		_, err = svc.Register(ctx, "Someone Else", "a@b.com", "different9", locale.French)
		require.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	})

	t.Run("validation failures never reach the store", func(t *testing.T) {
		svc := newService(t)
		cases := []struct {
			name, email, password string
		}{
			{"J", "a@b.com", "secret1"},
			{"Jo", "not-an-email", "secret1"},
			{"Jo", "a@b.com", "short"},
		}
		for _, c := range cases {
			_, err := svc.Register(ctx, c.name, c.email, c.password, locale.English)
			require.Error(t, err)
			_, ok := apperrors.AsValidation(err)
			require.True(t, ok, "%+v", c)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.Register(ctx, "Jo", "a@b.com", "secret1", locale.English)
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "a@b.com", "secret1")
		require.NoError(t, err)
		require.Equal(t, "a@b.com", user.Email)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, errWrong := svc.Authenticate(ctx, "a@b.com", "wrongpass")
		_, errUnknown := svc.Authenticate(ctx, "nobody@b.com", "secret1")
		require.ErrorIs(t, errWrong, apperrors.ErrInvalidCredentials)
		require.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
		require.Equal(t, errWrong.Error(), errUnknown.Error())
	})

	t.Run("password-less account never authenticates by password", func(t *testing.T) {
		_, err := svc.GetOrCreateByEmail(ctx, "oidc@b.com", "Oidc User", locale.English)
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, "oidc@b.com", "anything1")
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	user, err := svc.Register(ctx, "Jo", "a@b.com", "secret1", locale.English)
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		got, err := svc.GetProfile(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, user.Email, got.Email)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := svc.GetProfile(ctx, "no-such-id")
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	user, err := svc.Register(ctx, "Jo", "a@b.com", "secret1", locale.English)
	require.NoError(t, err)

	t.Run("partial update only touches set fields", func(t *testing.T) {
		got, err := svc.UpdateProfile(ctx, user.ID, users.ProfileUpdate{
			Bio:  utils.Ptr("hello"),
			City: utils.Ptr("Porto"),
		})
		require.NoError(t, err)
		require.Equal(t, "Jo", got.Name)
		require.Equal(t, "hello", got.Bio)
		require.Equal(t, "Porto", got.City)
	})

	t.Run("bio over the bound is rejected", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, user.ID, users.ProfileUpdate{
			Bio: utils.Ptr(strings.Repeat("x", 501)),
		})
		require.Error(t, err)
		ve, ok := apperrors.AsValidation(err)
		require.True(t, ok)
		require.Equal(t, "bio", ve.Field)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, "no-such-id", users.ProfileUpdate{Bio: utils.Ptr("x")})
		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestUpdateLocale(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	user, err := svc.Register(ctx, "Jo", "a@b.com", "secret1", locale.English)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateLocale(ctx, user.ID, locale.Portuguese))

	got, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, locale.Portuguese, got.Locale)

	err = svc.UpdateLocale(ctx, user.ID, locale.Locale("de"))
	require.Error(t, err)
	_, ok := apperrors.AsValidation(err)
	require.True(t, ok)
}

func TestGetOrCreateByEmail(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	first, err := svc.GetOrCreateByEmail(ctx, "oidc@b.com", "Oidc User", locale.French)
	require.NoError(t, err)
	require.False(t, first.HasPassword())
	require.Equal(t, locale.French, first.Locale)

	again, err := svc.GetOrCreateByEmail(ctx, "oidc@b.com", "Renamed", locale.English)
	require.NoError(t, err)
	require.Equal(t, first.ID, again.ID)
	require.Equal(t, "Oidc User", again.Name)
}
