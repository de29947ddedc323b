package contextkeys

// Custom key type to avoid collisions with other packages.
type contextKey string

// UserContextKey is the gin context key holding the authenticated
// *models.User resolved from the session cookie.
const UserContextKey = contextKey("usuario")

// CSRFContextKey is the gin context key holding the CSRF token
// expected in state-mutating form submissions.
const CSRFContextKey = contextKey("csrf_token")
