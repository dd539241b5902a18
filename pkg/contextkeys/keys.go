package contextkeys

type contextKey string

const (
	// SessionClaimsKey holds the *service.SessionClaims of the
	// authenticated actor for the lifetime of one request.
	SessionClaimsKey contextKey = "SessionClaims"
)
