package server

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalReturnPath(t *testing.T) {
	t.Run("relative paths pass through", func(t *testing.T) {
		for _, path := range []string{"/", "/fr/profile", "/en/jobs/1111?tab=details"} {
			require.Equal(t, path, localReturnPath(path), path)
		}
	})

	t.Run("off-site targets are discarded", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"https://evil.example",
			"http://evil.example/fr/profile",
			"//evil.example",
			"/\\evil.example",
			"javascript:alert(1)",
			"profile", // no leading slash
		} {
			require.Empty(t, localReturnPath(raw), raw)
		}
	})
}
