package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bienesraices/internal/logger"
	"bienesraices/pkg/contextkeys"
)

// CSRFCookie holds the anti-forgery token (double-submit pattern).
const CSRFCookie = "_csrf"

// CSRFHeader lets fetch()-driven endpoints send the token without a form.
const CSRFHeader = "CSRF-Token"

// CSRFField is the hidden input name in server-rendered forms.
const CSRFField = "_csrf"

// CSRF issues a per-session anti-forgery token on safe requests and
// validates it on every state-mutating one.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CSRFCookie)
		if err != nil || token == "" {
			token = uuid.NewString()
			c.SetCookie(CSRFCookie, token, 0, "/", "", false, true)
		}
		c.Set(string(contextkeys.CSRFContextKey), token)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		submitted := c.GetHeader(CSRFHeader)
		if submitted == "" {
			submitted = c.PostForm(CSRFField)
		}

		if subtle.ConstantTimeCompare([]byte(submitted), []byte(token)) != 1 {
			logger.CtxWarn(c.Request.Context(), "csrf token mismatch",
				"path", c.Request.URL.Path, "method", c.Request.Method)
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Next()
	}
}

// CSRFToken returns the token to embed in rendered forms.
func CSRFToken(c *gin.Context) string {
	val, ok := c.Get(string(contextkeys.CSRFContextKey))
	if !ok {
		return ""
	}
	token, _ := val.(string)
	return token
}
