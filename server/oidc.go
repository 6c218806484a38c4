package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jobatlas/jobatlas/internal/config"
	"github.com/jobatlas/jobatlas/locale"
	"github.com/jobatlas/jobatlas/server/oidcflow"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

type OidcConfig struct {
	OidcProvider *oidc.Provider
	OAuth2Config *oauth2.Config
	OidcVerifier *oidc.IDTokenVerifier
}

// NewGoogleOidc discovers the Google OIDC endpoints and builds the client
// configuration for the sign-in flow.
func NewGoogleOidc(ctx context.Context, cfg config.Config) (*OidcConfig, error) {
	if cfg.GetGoogleClientID() == "" {
		return nil, fmt.Errorf("[NewGoogleOidc] google client id is not configured")
	}

	provider, err := oidc.NewProvider(ctx, cfg.GetOidcIssuer())
	if err != nil {
		return nil, fmt.Errorf("[NewGoogleOidc] failed to create OIDC provider: %w", err)
	}

	return &OidcConfig{
		OidcProvider: provider,
		OAuth2Config: &oauth2.Config{
			ClientID:     cfg.GetGoogleClientID(),
			ClientSecret: cfg.GetGoogleClientSecret(),
			Endpoint:     provider.Endpoint(),
			RedirectURL:  cfg.GetBaseURL() + RouteAuthCallback,
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		OidcVerifier: provider.Verifier(&oidc.Config{
			ClientID: cfg.GetGoogleClientID(),
		}),
	}, nil
}

// localReturnPath keeps the post sign-in redirect on this site. Only a plain
// relative path is accepted; absolute URLs and the scheme-relative "//host"
// and "/\host" forms are discarded.
func localReturnPath(raw string) string {
	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") && !strings.HasPrefix(raw, "/\\") {
		return raw
	}
	return ""
}

// GoogleSignInHandler starts the Google sign-in flow
// (GET /api/auth/google)
func (s *Server) GoogleSignInHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.oidc == nil {
			writeJSONError(w, http.StatusNotImplemented, "Google sign-in is not configured")
			return
		}

		state := generateRandomString(32)
		nonce := generateRandomString(32)
		codeVerifier := generateRandomString(32)

		err := s.oidcFlow.Upsert(state, &oidcflow.FlowState{
			CodeVerifier: codeVerifier,
			Nonce:        nonce,
			ReturnURL:    r.URL.Query().Get("callbackUrl"),
			Locale:       r.URL.Query().Get("locale"),
			CreatedAt:    time.Now(),
		})
		if err != nil {
			log.Err(err).Msg("failed to store sign-in state")
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		authURL := s.oidc.OAuth2Config.AuthCodeURL(state,
			oidc.Nonce(nonce),
			oauth2.SetAuthURLParam("code_challenge", generateCodeChallenge(codeVerifier)),
			oauth2.SetAuthURLParam("code_challenge_method", "S256"),
		)
		http.Redirect(w, r, authURL, http.StatusFound)
	}
}

// GoogleCallbackHandler finishes the Google sign-in flow
// (GET /api/auth/callback/google)
func (s *Server) GoogleCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.oidc == nil {
			writeJSONError(w, http.StatusNotImplemented, "Google sign-in is not configured")
			return
		}

		state := r.FormValue("state")
		code := r.FormValue("code")
		errorParam := r.FormValue("error")

		if errorParam != "" {
			http.Error(w, fmt.Sprintf("Authorization failed: %s", errorParam), http.StatusBadRequest)
			return
		}
		if code == "" || state == "" {
			http.Error(w, "Missing code or state parameter", http.StatusBadRequest)
			return
		}

		flowState, err := s.oidcFlow.Get(state)
		if err != nil || flowState == nil {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		// Clean up state after use
		if err := s.oidcFlow.Delete(state); err != nil {
			http.Error(w, "Invalid state parameter", http.StatusInternalServerError)
			return
		}

		oauth2Token, err := s.oidc.OAuth2Config.Exchange(
			r.Context(),
			code,
			oauth2.SetAuthURLParam("code_verifier", flowState.CodeVerifier),
		)
		if err != nil {
			http.Error(w, fmt.Sprintf("Token exchange failed: %v", err), http.StatusInternalServerError)
			return
		}

		rawIDToken, ok := oauth2Token.Extra("id_token").(string)
		if !ok {
			http.Error(w, "No ID token in response", http.StatusInternalServerError)
			return
		}

		idToken, err := s.oidc.OidcVerifier.Verify(r.Context(), rawIDToken)
		if err != nil {
			http.Error(w, fmt.Sprintf("ID token verification failed: %v", err), http.StatusInternalServerError)
			return
		}

		var claims struct {
			Nonce string `json:"nonce"`
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		if err := idToken.Claims(&claims); err != nil {
			http.Error(w, fmt.Sprintf("Failed to extract claims: %v", err), http.StatusInternalServerError)
			return
		}

		// Validate nonce to prevent replay attacks
		if claims.Nonce != flowState.Nonce {
			http.Error(w, "Invalid nonce", http.StatusUnauthorized)
			return
		}
		if claims.Email == "" {
			http.Error(w, "Identity provider returned no email", http.StatusUnauthorized)
			return
		}

		loc := locale.Parse(flowState.Locale)
		user, err := s.accounts.GetOrCreateByEmail(r.Context(), claims.Email, claims.Name, loc)
		if err != nil {
			log.Err(err).Msg("oidc account lookup failed")
			http.Error(w, "Failed to sign in", http.StatusInternalServerError)
			return
		}

		token, err := s.sessions.Issue(user.ID, user.Locale)
		if err != nil {
			log.Err(err).Msg("session issue failed")
			http.Error(w, "Failed to sign in", http.StatusInternalServerError)
			return
		}
		s.setSessionCookie(w, r, token)

		// Redirect to original destination or the locale home page
		returnURL := localReturnPath(flowState.ReturnURL)
		if returnURL == "" || returnURL == "/" {
			returnURL = locale.Prefix(user.Locale, "/")
		}
		http.Redirect(w, r, returnURL, http.StatusSeeOther)
	}
}
