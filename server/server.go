package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/jobatlas/jobatlas/account"
	"github.com/jobatlas/jobatlas/avatar"
	"github.com/jobatlas/jobatlas/internal/config"
	"github.com/jobatlas/jobatlas/jobs"
	"github.com/jobatlas/jobatlas/server/oidcflow"
	"github.com/jobatlas/jobatlas/session"
)

type Server struct {
	env      string // Environment (e.g., "DEV", "production")
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	accounts *account.Service
	catalog  jobs.Repo
	sessions *session.Manager

	avatars  *avatar.Service
	oidc     *OidcConfig
	oidcFlow oidcflow.Repo
}

// Option modifies the Server instance.
type Option func(*Server)

// WithAvatarService enables the avatar upload endpoint.
func WithAvatarService(svc *avatar.Service) Option {
	return func(s *Server) {
		s.avatars = svc
	}
}

// WithOidc enables the Google sign-in flow.
func WithOidc(oidc *OidcConfig) Option {
	return func(s *Server) {
		s.oidc = oidc
	}
}

// WithOidcFlowRepo overrides the in-flight OIDC state store (primarily for testing)
func WithOidcFlowRepo(repo oidcflow.Repo) Option {
	return func(s *Server) {
		s.oidcFlow = repo
	}
}

func New(cfg config.Config, accounts *account.Service, catalog jobs.Repo, sessions *session.Manager, options ...Option) (*Server, error) {
	if accounts == nil || catalog == nil || sessions == nil {
		return nil, fmt.Errorf("[Server New] accounts, catalog, and sessions are required")
	}

	s := &Server{
		mux:      http.NewServeMux(),
		config:   cfg,
		accounts: accounts,
		catalog:  catalog,
		sessions: sessions,
		oidcFlow: oidcflow.NewInMemoryRepo(),
	}
	s.env = cfg.GetEnv()
	for _, opt := range options {
		opt(s)
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
