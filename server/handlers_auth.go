package server

import (
	"encoding/json"
	"net/http"

	"github.com/jobatlas/jobatlas/internal/apperrors"
	"github.com/jobatlas/jobatlas/locale"
	"github.com/rs/zerolog/log"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Locale   string `json:"locale"`
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterHandler creates an account (POST /api/auth/register)
func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := s.accounts.Register(r.Context(), req.Name, req.Email, req.Password, locale.Parse(req.Locale))
		if err != nil {
			if apperrors.Is(err, apperrors.ErrAlreadyExists) {
				writeJSONError(w, http.StatusBadRequest, "User already exists")
				return
			}
			if ve, ok := apperrors.AsValidation(err); ok {
				writeJSONError(w, http.StatusBadRequest, ve.Message)
				return
			}
			log.Err(err).Msg("register failed")
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// SignInHandler verifies credentials and issues the session cookie
// (POST /api/auth/signin)
func (s *Server) SignInHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signinRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := s.accounts.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrInvalidCredentials) {
				writeJSONError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			log.Err(err).Msg("signin failed")
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		token, err := s.sessions.Issue(user.ID, user.Locale)
		if err != nil {
			log.Err(err).Msg("session issue failed")
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		s.setSessionCookie(w, r, token)
		writeJSON(w, http.StatusOK, user)
	}
}

// SignOutHandler expires the session cookie (POST /api/auth/signout)
func (s *Server) SignOutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.clearSessionCookie(w, r)
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
