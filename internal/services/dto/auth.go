package dto

// RegisterForm binds the /auth/registro form.
type RegisterForm struct {
	Name           string `form:"nombre" validate:"required"`
	Email          string `form:"email" validate:"required,email"`
	Password       string `form:"password" validate:"required,min=6"`
	RepeatPassword string `form:"repetir_password" validate:"required,eqfield=Password"`
}

// LoginForm binds the /auth/login form.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// ForgotPasswordForm binds the /auth/olvide-password form.
type ForgotPasswordForm struct {
	Email string `form:"email" validate:"required,email"`
}

// ResetPasswordForm binds the new-password form behind a reset token.
type ResetPasswordForm struct {
	Password string `form:"password" validate:"required,min=6"`
}
