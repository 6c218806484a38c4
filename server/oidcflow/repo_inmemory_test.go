package oidcflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInMemoryRepo(t *testing.T) {
	repo := NewInMemoryRepo()

	state := &FlowState{
		CodeVerifier: "verifier",
		Nonce:        "nonce",
		ReturnURL:    "/fr/profile",
		Locale:       "fr",
		CreatedAt:    time.Now(),
	}

	t.Run("roundtrip", func(t *testing.T) {
		require.NoError(t, repo.Upsert("abc", state))

		got, err := repo.Get("abc")
		require.NoError(t, err)
		require.Equal(t, state.Nonce, got.Nonce)
		require.Equal(t, state.ReturnURL, got.ReturnURL)

		// Stored copy is isolated from later mutation.
		got.Nonce = "changed"
		again, err := repo.Get("abc")
		require.NoError(t, err)
		require.Equal(t, "nonce", again.Nonce)
	})

	t.Run("delete removes the state", func(t *testing.T) {
		require.NoError(t, repo.Delete("abc"))
		_, err := repo.Get("abc")
		require.Error(t, err)
	})

	t.Run("stale states are rejected", func(t *testing.T) {
		old := *state
		old.CreatedAt = time.Now().Add(-time.Hour)
		require.NoError(t, repo.Upsert("old", &old))

		_, err := repo.Get("old")
		require.Error(t, err)
	})

	t.Run("empty state key is invalid", func(t *testing.T) {
		require.Error(t, repo.Upsert("", state))
		_, err := repo.Get("")
		require.Error(t, err)
	})
}
