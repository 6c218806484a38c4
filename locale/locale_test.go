package locale_test

import (
	"testing"

	"github.com/jobatlas/jobatlas/locale"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("unprefixed paths resolve to default", func(t *testing.T) {
		for _, path := range []string{"/", "/profile", "/auth/signin", "/jobs/1111"} {
			l, stripped, hadPrefix := locale.Resolve(path)
			require.Equal(t, locale.Default, l, path)
			require.Equal(t, path, stripped, path)
			require.False(t, hadPrefix, path)
		}
	})

	t.Run("prefixed paths strip the prefix", func(t *testing.T) {
		for _, l := range locale.Supported {
			for _, rest := range []string{"/profile", "/auth/signin", "/jobs/1111"} {
				got, stripped, hadPrefix := locale.Resolve("/" + string(l) + rest)
				require.Equal(t, l, got)
				require.Equal(t, rest, stripped)
				require.True(t, hadPrefix)
			}
		}
	})

	t.Run("bare locale strips to root", func(t *testing.T) {
		l, stripped, hadPrefix := locale.Resolve("/fr")
		require.Equal(t, locale.French, l)
		require.Equal(t, "/", stripped)
		require.True(t, hadPrefix)
	})

	t.Run("lookalike prefixes are not locales", func(t *testing.T) {
		l, stripped, hadPrefix := locale.Resolve("/env/profile")
		require.Equal(t, locale.Default, l)
		require.Equal(t, "/env/profile", stripped)
		require.False(t, hadPrefix)
	})

	t.Run("empty path behaves like root", func(t *testing.T) {
		l, stripped, hadPrefix := locale.Resolve("")
		require.Equal(t, locale.Default, l)
		require.Equal(t, "/", stripped)
		require.False(t, hadPrefix)
	})
}

func TestPrefix(t *testing.T) {
	require.Equal(t, "/en", locale.Prefix(locale.English, "/"))
	require.Equal(t, "/pt", locale.Prefix(locale.Portuguese, ""))
	require.Equal(t, "/fr/profile", locale.Prefix(locale.French, "/profile"))
}

func TestParse(t *testing.T) {
	require.Equal(t, locale.French, locale.Parse("fr"))
	require.Equal(t, locale.Default, locale.Parse("de"))
	require.Equal(t, locale.Default, locale.Parse(""))
}

func TestFromAcceptLanguage(t *testing.T) {
	t.Run("picks supported language", func(t *testing.T) {
		require.Equal(t, locale.French, locale.FromAcceptLanguage("fr-FR,fr;q=0.9,en;q=0.8"))
		require.Equal(t, locale.Portuguese, locale.FromAcceptLanguage("pt-BR"))
	})

	t.Run("falls back to default", func(t *testing.T) {
		require.Equal(t, locale.Default, locale.FromAcceptLanguage(""))
		require.Equal(t, locale.Default, locale.FromAcceptLanguage("not a header"))
	})
}
