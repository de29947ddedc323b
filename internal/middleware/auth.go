package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bienesraices/internal/auth"
	"bienesraices/internal/logger"
	"bienesraices/internal/models"
	"bienesraices/internal/services"
	"bienesraices/pkg/contextkeys"
)

// SessionCookie is the http-only cookie carrying the signed session token.
const SessionCookie = "_token"

const loginPath = "/auth/login"

// RequireAuth resolves the session cookie to a fresh user record and
// aborts to the login page when the request carries no valid identity.
func RequireAuth(jwtManager *auth.JWTManager, authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := resolveUser(c, jwtManager, authService)
		if user == nil {
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Set(string(contextkeys.UserContextKey), user)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))
		c.Next()
	}
}

// IdentifyUser resolves the session cookie when present but lets
// anonymous requests through. Public pages use it to show the seller
// capability flag.
func IdentifyUser(jwtManager *auth.JWTManager, authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := resolveUser(c, jwtManager, authService); user != nil {
			c.Set(string(contextkeys.UserContextKey), user)
			c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))
		}
		c.Next()
	}
}

// resolveUser verifies the token and re-fetches the user so that
// confirmation and ownership state are always current. Identity lives
// entirely in the token; there is no server-side session store.
func resolveUser(c *gin.Context, jwtManager *auth.JWTManager, authService services.AuthService) *models.User {
	tokenStr, err := c.Cookie(SessionCookie)
	if err != nil || tokenStr == "" {
		return nil
	}

	claims, err := jwtManager.Parse(tokenStr)
	if err != nil {
		logger.CtxDebug(c.Request.Context(), "invalid session token", "error", err)
		return nil
	}

	user, err := authService.ResolveUser(claims.UserID)
	if err != nil {
		return nil
	}

	return user
}

// CurrentUser returns the resolved user, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	val, ok := c.Get(string(contextkeys.UserContextKey))
	if !ok {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}
