package server

func (s *Server) initRoutes() {
	// Page routes. The dispatcher strips the locale prefix before the mux
	// sees these paths and blocks unauthenticated access to protected pages.
	s.RegisterRouteHandler("GET /{$}", ChainMiddleware(s.IndexHandler(), s.PageMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteSignIn, ChainMiddleware(s.SignInPageHandler(), s.PageMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteSignUp, ChainMiddleware(s.SignUpPageHandler(), s.PageMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteProfile, ChainMiddleware(s.ProfilePageHandler(), s.PageMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAssessment, ChainMiddleware(s.AssessmentPageHandler(), s.PageMiddleware()...))

	// Auth API routes
	s.RegisterRouteHandler("POST "+RouteAPIRegister, ChainMiddleware(s.RegisterHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPISignIn, ChainMiddleware(s.SignInHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPISignOut, ChainMiddleware(s.SignOutHandler(), s.APIMiddleware()...))

	// Google OIDC flow
	s.RegisterRouteHandler("GET "+RouteAuthGoogle, ChainMiddleware(s.GoogleSignInHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAuthCallback, ChainMiddleware(s.GoogleCallbackHandler(), s.APIMiddleware()...))

	// Profile API routes (require a session)
	s.RegisterRouteHandler("GET "+RouteAPIProfile, ChainMiddleware(s.ProfileGetHandler(), s.APIMiddleware(s.RequireSession)...))
	s.RegisterRouteHandler("PUT "+RouteAPIProfile, ChainMiddleware(s.ProfileUpdateHandler(), s.APIMiddleware(s.RequireSession)...))
	s.RegisterRouteHandler("PUT "+RouteAPILocale, ChainMiddleware(s.LocaleUpdateHandler(), s.APIMiddleware(s.RequireSession)...))
	s.RegisterRouteHandler("POST "+RouteAPIAvatarUpload, ChainMiddleware(s.AvatarUploadURLHandler(), s.APIMiddleware(s.RequireSession)...))

	// Job catalog API routes
	s.RegisterRouteHandler("GET "+RouteAPICategories, ChainMiddleware(s.CategoriesHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPICategoryJobs, ChainMiddleware(s.CategoryJobsHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPIJob, ChainMiddleware(s.JobHandler(), s.APIMiddleware()...))

	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())
}
