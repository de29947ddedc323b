package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bienesraices/internal/logger"
	"bienesraices/internal/middleware"
	"bienesraices/internal/validator"
)

// BaseHandler carries the pieces every handler needs: the form
// validator and the shared render/redirect helpers.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// HTML renders a view with the fields every template expects: the
// CSRF token and the current user (when identified).
func (h *BaseHandler) HTML(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["csrfToken"] = middleware.CSRFToken(c)
	if user := middleware.CurrentUser(c); user != nil {
		data["usuario"] = user.Public()
	}
	c.HTML(code, name, data)
}

// BindForm binds a form body. A bind failure counts as a validation
// failure and is reported the same way.
func (h *BaseHandler) BindForm(c *gin.Context, obj interface{}) *validator.ValidationError {
	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWarn(c.Request.Context(), "failed to bind form", "error", err, "path", c.Request.URL.Path)
		return &validator.ValidationError{Errors: map[string]string{"form": "Datos inválidos"}}
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			return vErr
		}
		logger.CtxWithError(c.Request.Context(), "internal validator error", err, "path", c.Request.URL.Path)
		return &validator.ValidationError{Errors: map[string]string{"form": "Datos inválidos"}}
	}

	return nil
}

// RedirectToDashboard is the safe default for authorization and
// not-found failures on protected listing actions: no error page, no
// status signaling, just back to the owner's dashboard.
func (h *BaseHandler) RedirectToDashboard(c *gin.Context) {
	c.Redirect(http.StatusFound, "/mis-propiedades")
}

// RedirectNotFound sends public requests for missing resources to the
// 404 page.
func (h *BaseHandler) RedirectNotFound(c *gin.Context) {
	c.Redirect(http.StatusFound, "/404")
}
