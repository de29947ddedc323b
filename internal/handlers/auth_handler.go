package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bienesraices/internal/middleware"
	"bienesraices/internal/services"
	"bienesraices/internal/services/dto"
	"bienesraices/pkg/apperrors"
)

// AuthHandler serves the account lifecycle: registration, email
// confirmation, login/logout and password reset.
type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	h.HTML(c, http.StatusOK, "login.html", gin.H{
		"pagina": "Iniciar Sesión",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if vErr := h.BindForm(c, &form); vErr != nil {
		h.HTML(c, http.StatusOK, "login.html", gin.H{
			"pagina":  "Iniciar Sesión",
			"errores": vErr.Messages(),
		})
		return
	}

	token, err := h.authService.Login(&form)
	if err != nil {
		msg := "No fue posible iniciar sesión"
		if appErr, ok := apperrors.AsAppError(err); ok {
			msg = appErr.Message
		}
		h.HTML(c, http.StatusOK, "login.html", gin.H{
			"pagina":  "Iniciar Sesión",
			"errores": []string{msg},
		})
		return
	}

	c.SetCookie(middleware.SessionCookie, token, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/mis-propiedades")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/auth/login")
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	h.HTML(c, http.StatusOK, "registro.html", gin.H{
		"pagina": "Crear Cuenta",
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if vErr := h.BindForm(c, &form); vErr != nil {
		// Re-render with the submitted name and email preserved.
		h.HTML(c, http.StatusOK, "registro.html", gin.H{
			"pagina":  "Crear Cuenta",
			"errores": vErr.Messages(),
			"datos":   gin.H{"nombre": form.Name, "email": form.Email},
		})
		return
	}

	if err := h.authService.Register(&form); err != nil {
		msg := "No fue posible crear la cuenta"
		if appErr, ok := apperrors.AsAppError(err); ok {
			msg = appErr.Message
			if appErr.Code == apperrors.CodeAlreadyExists {
				msg = "El usuario ya está registrado"
			}
		}
		h.HTML(c, http.StatusOK, "registro.html", gin.H{
			"pagina":  "Crear Cuenta",
			"errores": []string{msg},
			"datos":   gin.H{"nombre": form.Name, "email": form.Email},
		})
		return
	}

	h.HTML(c, http.StatusOK, "mensaje.html", gin.H{
		"pagina":  "Cuenta creada correctamente",
		"mensaje": "Hemos enviado un email de confirmación, presiona en el enlace",
	})
}

// Confirm consumes the emailed confirmation token.
func (h *AuthHandler) Confirm(c *gin.Context) {
	token := c.Param("token")

	if err := h.authService.ConfirmAccount(token); err != nil {
		h.HTML(c, http.StatusOK, "confirmar-cuenta.html", gin.H{
			"pagina":  "Error al confirmar tu cuenta",
			"mensaje": "Hubo un error al confirmar tu cuenta, intenta de nuevo",
			"error":   true,
		})
		return
	}

	h.HTML(c, http.StatusOK, "confirmar-cuenta.html", gin.H{
		"pagina":  "Cuenta confirmada",
		"mensaje": "La cuenta se confirmó correctamente",
		"error":   false,
	})
}

func (h *AuthHandler) ShowForgotPassword(c *gin.Context) {
	h.HTML(c, http.StatusOK, "olvide-password.html", gin.H{
		"pagina": "Recupera tu acceso a Bienes Raices",
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var form dto.ForgotPasswordForm
	if vErr := h.BindForm(c, &form); vErr != nil {
		h.HTML(c, http.StatusOK, "olvide-password.html", gin.H{
			"pagina":  "Recupera tu acceso a Bienes Raices",
			"errores": vErr.Messages(),
		})
		return
	}

	if err := h.authService.RequestPasswordReset(form.Email); err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeInvalidCredentials {
			h.HTML(c, http.StatusOK, "olvide-password.html", gin.H{
				"pagina":  "Recupera tu acceso a Bienes Raices",
				"errores": []string{"El Email no pertenece a ningún usuario"},
			})
			return
		}
		apperrors.HandleError(c, err)
		return
	}

	h.HTML(c, http.StatusOK, "mensaje.html", gin.H{
		"pagina":  "Reestablece tu Password",
		"mensaje": "Hemos enviado un email con las instrucciones",
	})
}

// ShowResetPassword validates the token before showing the new
// password form.
func (h *AuthHandler) ShowResetPassword(c *gin.Context) {
	token := c.Param("token")

	if err := h.authService.CheckResetToken(token); err != nil {
		h.HTML(c, http.StatusOK, "confirmar-cuenta.html", gin.H{
			"pagina":  "Reestablece tu Password",
			"mensaje": "Hubo un error al validar tu información, intenta de nuevo",
			"error":   true,
		})
		return
	}

	h.HTML(c, http.StatusOK, "reset-password.html", gin.H{
		"pagina": "Reestablece tu Password",
	})
}

// ResetPassword consumes the token and stores the new password. The
// token is checked again here; an expired link renders the error view
// instead of panicking on a missing user.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.Param("token")

	var form dto.ResetPasswordForm
	if vErr := h.BindForm(c, &form); vErr != nil {
		h.HTML(c, http.StatusOK, "reset-password.html", gin.H{
			"pagina":  "Reestablece tu Password",
			"errores": vErr.Messages(),
		})
		return
	}

	if err := h.authService.ResetPassword(token, form.Password); err != nil {
		h.HTML(c, http.StatusOK, "confirmar-cuenta.html", gin.H{
			"pagina":  "Reestablece tu Password",
			"mensaje": "Hubo un error al validar tu información, intenta de nuevo",
			"error":   true,
		})
		return
	}

	h.HTML(c, http.StatusOK, "confirmar-cuenta.html", gin.H{
		"pagina":  "Password Reestablecido",
		"mensaje": "El Password se guardó correctamente",
		"error":   false,
	})
}
