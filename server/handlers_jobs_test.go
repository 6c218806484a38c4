package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func getJSON(t *testing.T, ts *testServer, path string, out interface{}) int {
	t.Helper()
	rec := httptest.NewRecorder()
	ts.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec.Code
}

func TestCategoriesEndpoint(t *testing.T) {
	ts := newTestServer(t)

	t.Run("lists the seeded categories", func(t *testing.T) {
		var categories []struct {
			Code string `json:"code"`
			Name string `json:"name"`
		}
		code := getJSON(t, ts, "/api/jobs/categories", &categories)

		require.Equal(t, http.StatusOK, code)
		require.Len(t, categories, 5)
		require.Equal(t, "1", categories[0].Code)
		require.Equal(t, "Managers", categories[0].Name)
	})

	t.Run("locale override localizes the names", func(t *testing.T) {
		var categories []struct {
			Name string `json:"name"`
		}
		code := getJSON(t, ts, "/api/jobs/categories?locale=fr", &categories)

		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "Directeurs et cadres", categories[0].Name)
	})

	t.Run("Accept-Language localizes when no override is given", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/jobs/categories", nil)
		req.Header.Set("Accept-Language", "pt-BR")
		rec := httptest.NewRecorder()
		ts.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Diretores e gerentes")
	})
}

func TestCategoryJobsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	t.Run("lists the jobs of a category", func(t *testing.T) {
		var list []struct {
			Code       string `json:"code"`
			Title      string `json:"title"`
			IsEmerging bool   `json:"isEmerging"`
		}
		code := getJSON(t, ts, "/api/jobs/categories/2/jobs", &list)

		require.Equal(t, http.StatusOK, code)
		require.Len(t, list, 1)
		require.Equal(t, "2512", list[0].Code)
		require.Equal(t, "Software Developer", list[0].Title)
		require.True(t, list[0].IsEmerging)
	})

	t.Run("unknown category is a 404", func(t *testing.T) {
		code := getJSON(t, ts, "/api/jobs/categories/9/jobs", nil)
		require.Equal(t, http.StatusNotFound, code)
	})
}

func TestJobEndpoint(t *testing.T) {
	ts := newTestServer(t)

	t.Run("returns one job localized", func(t *testing.T) {
		var job struct {
			Code       string `json:"code"`
			Title      string `json:"title"`
			IsInformal bool   `json:"isInformal"`
			IsAgri     bool   `json:"isAgri"`
		}
		code := getJSON(t, ts, "/api/jobs/6111?locale=fr", &job)

		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "6111", job.Code)
		require.Equal(t, "Agriculteur", job.Title)
		require.True(t, job.IsInformal)
		require.True(t, job.IsAgri)
	})

	t.Run("unknown job is a 404", func(t *testing.T) {
		code := getJSON(t, ts, "/api/jobs/0000", nil)
		require.Equal(t, http.StatusNotFound, code)
	})
}
