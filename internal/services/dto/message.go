package dto

// MessageForm binds the inquiry form on the public listing page.
type MessageForm struct {
	Body string `form:"mensaje" validate:"required,min=20"`
}
