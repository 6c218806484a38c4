package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Page routes (served behind the locale dispatcher, paths are locale-stripped)
	RouteSignIn     = "/auth/signin"
	RouteSignUp     = "/auth/signup"
	RouteProfile    = "/profile"
	RouteAssessment = "/assessment"

	// Auth API routes
	RouteAPIRegister = "/api/auth/register"
	RouteAPISignIn   = "/api/auth/signin"
	RouteAPISignOut  = "/api/auth/signout"

	// Google OIDC routes
	RouteAuthGoogle   = "/api/auth/google"
	RouteAuthCallback = "/api/auth/callback/google"

	// Profile API routes
	RouteAPIProfile      = "/api/user/profile"
	RouteAPILocale       = "/api/user/locale"
	RouteAPIAvatarUpload = "/api/user/avatar/upload-url"

	// Job catalog API routes
	RouteAPICategories   = "/api/jobs/categories"
	RouteAPICategoryJobs = "/api/jobs/categories/{code}/jobs"
	RouteAPIJob          = "/api/jobs/{code}"

	RouteHealth = "/healthz"
)
