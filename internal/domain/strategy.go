package domain

type AuthStrategy string

const (
	StrategyJWT     AuthStrategy = "jwt"
	StrategyAuthURL AuthStrategy = "auth_url"
	StrategyReuse   AuthStrategy = "reuse"
	StrategyNone    AuthStrategy = "none"
)

// Credentials is the hub credential material resolved from the
// environment at startup. Fields left empty mean "not provided".
type Credentials struct {
	JWTClientID string
	HubUsername string
	JWTKey      string
	AuthURL     string
}

// ResolveStrategy picks the auth strategy for the given credentials.
// Precedence: complete JWT triple beats an auth URL, which beats a
// bare username (reuse of an already-authenticated hub). Callers rely
// on this exact ordering; an auth URL next to a full JWT triple is
// deliberately ignored.
func ResolveStrategy(creds Credentials) AuthStrategy {
	switch {
	case creds.JWTClientID != "" && creds.HubUsername != "" && creds.JWTKey != "":
		return StrategyJWT
	case creds.AuthURL != "":
		return StrategyAuthURL
	case creds.HubUsername != "":
		return StrategyReuse
	default:
		return StrategyNone
	}
}
