package config

type Oidc struct{}

var _ OidcConfig = Oidc{}

func (Oidc) GetGoogleClientID() string {
	return GetEnv("GOOGLE_CLIENT_ID", "")
}

func (Oidc) GetGoogleClientSecret() string {
	return GetEnv("GOOGLE_CLIENT_SECRET", "")
}

func (Oidc) GetOidcIssuer() string {
	return GetEnv("OIDC_ISSUER", "https://accounts.google.com")
}
