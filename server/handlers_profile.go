package server

import (
	"encoding/json"
	"net/http"

	"github.com/jobatlas/jobatlas/internal/apperrors"
	"github.com/jobatlas/jobatlas/locale"
	"github.com/jobatlas/jobatlas/users"
	"github.com/rs/zerolog/log"
)

// ProfileGetHandler returns the signed-in user's profile
// (GET /api/user/profile)
func (s *Server) ProfileGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())

		user, err := s.accounts.GetProfile(r.Context(), sess.UserID)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				writeJSONError(w, http.StatusNotFound, "User not found")
				return
			}
			log.Err(err).Msg("profile fetch failed")
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// ProfileUpdateHandler applies a partial profile update
// (PUT /api/user/profile). Fields outside the allow-list are rejected.
func (s *Server) ProfileUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())

		var upd users.ProfileUpdate
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&upd); err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := s.accounts.UpdateProfile(r.Context(), sess.UserID, upd)
		if err != nil {
			if ve, ok := apperrors.AsValidation(err); ok {
				writeJSONError(w, http.StatusBadRequest, ve.Message)
				return
			}
			if apperrors.Is(err, apperrors.ErrNotFound) {
				writeJSONError(w, http.StatusNotFound, "User not found")
				return
			}
			log.Err(err).Msg("profile update failed")
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

type localeRequest struct {
	Locale string `json:"locale"`
}

// LocaleUpdateHandler persists the user's locale preference
// (PUT /api/user/locale)
func (s *Server) LocaleUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())

		var req localeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := s.accounts.UpdateLocale(r.Context(), sess.UserID, locale.Locale(req.Locale)); err != nil {
			if ve, ok := apperrors.AsValidation(err); ok {
				writeJSONError(w, http.StatusBadRequest, ve.Message)
				return
			}
			if apperrors.Is(err, apperrors.ErrNotFound) {
				writeJSONError(w, http.StatusNotFound, "User not found")
				return
			}
			log.Err(err).Msg("locale update failed")
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		// Re-issue the cookie so the session carries the new preference.
		token, err := s.sessions.Issue(sess.UserID, locale.Parse(req.Locale))
		if err == nil {
			s.setSessionCookie(w, r, token)
		}

		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

type avatarUploadRequest struct {
	ContentType string `json:"contentType"`
}

// AvatarUploadURLHandler hands out a presigned PUT URL for a new avatar
// (POST /api/user/avatar/upload-url)
func (s *Server) AvatarUploadURLHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.avatars == nil {
			writeJSONError(w, http.StatusNotImplemented, "Avatar uploads are not configured")
			return
		}
		sess := sessionFromContext(r.Context())

		var req avatarUploadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		upload, err := s.avatars.PresignUpload(r.Context(), sess.UserID, req.ContentType)
		if err != nil {
			log.Err(err).Msg("avatar presign failed")
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, upload)
	}
}
