package server

import (
	"net/http"

	"github.com/jobatlas/jobatlas/internal/apperrors"
	"github.com/jobatlas/jobatlas/jobs"
	"github.com/jobatlas/jobatlas/locale"
	"github.com/rs/zerolog/log"
)

type pageData struct {
	AppName string
	Locale  locale.Locale
	Error   string

	Categories []jobs.LocalizedCategory
	Profile    interface{}
	Callback   string
}

// IndexHandler renders the home page with the category list
func (s *Server) IndexHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("index.html")
	if err != nil {
		panic("Failed to parse index template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		loc := localeFromContext(r.Context())

		categories, err := s.catalog.ListCategories(r.Context())
		if err != nil {
			log.Err(err).Msg("category list failed")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, pageData{
			AppName:    s.config.GetAppName(),
			Locale:     loc,
			Categories: jobs.LocalizeCategories(categories, loc),
		})
	}
}

// SignInPageHandler renders the sign-in page (GET /auth/signin)
func (s *Server) SignInPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("signin.html")
	if err != nil {
		panic("Failed to parse signin template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, pageData{
			AppName:  s.config.GetAppName(),
			Locale:   localeFromContext(r.Context()),
			Error:    r.URL.Query().Get("error"),
			Callback: r.URL.Query().Get("callbackUrl"),
		})
	}
}

// SignUpPageHandler renders the registration page (GET /auth/signup)
func (s *Server) SignUpPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("signup.html")
	if err != nil {
		panic("Failed to parse signup template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, pageData{
			AppName: s.config.GetAppName(),
			Locale:  localeFromContext(r.Context()),
		})
	}
}

// ProfilePageHandler renders the profile page. The dispatcher guarantees a
// valid session before this handler runs.
func (s *Server) ProfilePageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("profile.html")
	if err != nil {
		panic("Failed to parse profile template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())
		if sess == nil {
			http.Redirect(w, r, locale.Prefix(localeFromContext(r.Context()), RouteSignIn), http.StatusSeeOther)
			return
		}

		user, err := s.accounts.GetProfile(r.Context(), sess.UserID)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				http.Error(w, "User not found", http.StatusNotFound)
				return
			}
			log.Err(err).Msg("profile fetch failed")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, pageData{
			AppName: s.config.GetAppName(),
			Locale:  localeFromContext(r.Context()),
			Profile: user,
		})
	}
}

// AssessmentPageHandler renders the assessment page, also session-gated by
// the dispatcher.
func (s *Server) AssessmentPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("assessment.html")
	if err != nil {
		panic("Failed to parse assessment template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, pageData{
			AppName: s.config.GetAppName(),
			Locale:  localeFromContext(r.Context()),
		})
	}
}
