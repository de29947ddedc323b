package handlers

// AppHandlers groups every handler for route registration.
type AppHandlers struct {
	AppHandler      *AppHandler
	AuthHandler     *AuthHandler
	PropertyHandler *PropertyHandler
}
