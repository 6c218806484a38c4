package server

import (
	"net/http"

	"github.com/jobatlas/jobatlas/internal/apperrors"
	"github.com/jobatlas/jobatlas/jobs"
	"github.com/jobatlas/jobatlas/locale"
	"github.com/rs/zerolog/log"
)

// requestLocale picks the locale for a catalog response: an explicit
// ?locale= override first, then the signed-in user's preference.
func (s *Server) requestLocale(r *http.Request) locale.Locale {
	if q := r.URL.Query().Get("locale"); q != "" {
		return locale.Parse(q)
	}
	if sess := s.sessions.FromRequest(r); sess.Valid() && sess.Locale != "" {
		return sess.Locale
	}
	return locale.FromAcceptLanguage(r.Header.Get("Accept-Language"))
}

// CategoriesHandler lists the job categories in the request locale
// (GET /api/jobs/categories)
func (s *Server) CategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := s.catalog.ListCategories(r.Context())
		if err != nil {
			log.Err(err).Msg("category list failed")
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, jobs.LocalizeCategories(categories, s.requestLocale(r)))
	}
}

// CategoryJobsHandler lists the jobs in one category
// (GET /api/jobs/categories/{code}/jobs)
func (s *Server) CategoryJobsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.PathValue("code")

		if _, err := s.catalog.GetCategory(r.Context(), code); err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				writeJSONError(w, http.StatusNotFound, "Category not found")
				return
			}
			log.Err(err).Msg("category fetch failed")
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		list, err := s.catalog.ListJobsByCategory(r.Context(), code)
		if err != nil {
			log.Err(err).Msg("job list failed")
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, jobs.LocalizeJobs(list, s.requestLocale(r)))
	}
}

// JobHandler returns a single job by code (GET /api/jobs/{code})
func (s *Server) JobHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := s.catalog.GetJob(r.Context(), r.PathValue("code"))
		if err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				writeJSONError(w, http.StatusNotFound, "Job not found")
				return
			}
			log.Err(err).Msg("job fetch failed")
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, job.Localize(s.requestLocale(r)))
	}
}
