package routes

import (
	"github.com/gin-gonic/gin"

	"bienesraices/internal/auth"
	"bienesraices/internal/handlers"
	"bienesraices/internal/middleware"
	"bienesraices/internal/services"
)

// RegisterRoutes wires every endpoint. Protected groups resolve the
// session cookie and bounce anonymous requests to the login page;
// public listing pages only identify the visitor.
func RegisterRoutes(
	router *gin.Engine,
	appHandlers *handlers.AppHandlers,
	jwtManager *auth.JWTManager,
	authService services.AuthService,
) {
	requireAuth := middleware.RequireAuth(jwtManager, authService)
	identifyUser := middleware.IdentifyUser(jwtManager, authService)

	// Public pages
	router.GET("/", identifyUser, appHandlers.AppHandler.Home)
	router.GET("/categorias/:id", identifyUser, appHandlers.AppHandler.Category)
	router.POST("/buscador", identifyUser, appHandlers.AppHandler.Search)
	router.GET("/404", identifyUser, appHandlers.AppHandler.NotFound)

	// Account lifecycle
	authGroup := router.Group("/auth")
	{
		authGroup.GET("/registro", appHandlers.AuthHandler.ShowRegister)
		authGroup.POST("/registro", appHandlers.AuthHandler.Register)
		authGroup.GET("/confirmar/:token", appHandlers.AuthHandler.Confirm)
		authGroup.GET("/login", appHandlers.AuthHandler.ShowLogin)
		authGroup.POST("/login", appHandlers.AuthHandler.Login)
		authGroup.POST("/cerrar-sesion", appHandlers.AuthHandler.Logout)
		authGroup.GET("/olvide-password", appHandlers.AuthHandler.ShowForgotPassword)
		authGroup.POST("/olvide-password", appHandlers.AuthHandler.ForgotPassword)
		authGroup.GET("/olvide-password/:token", appHandlers.AuthHandler.ShowResetPassword)
		authGroup.POST("/olvide-password/:token", appHandlers.AuthHandler.ResetPassword)
	}

	// Seller area
	router.GET("/mis-propiedades", requireAuth, appHandlers.PropertyHandler.Dashboard)
	router.GET("/propiedades/crear", requireAuth, appHandlers.PropertyHandler.ShowCreate)
	router.POST("/propiedades/crear", requireAuth, appHandlers.PropertyHandler.Create)
	router.GET("/propiedades/agregar-imagen/:id", requireAuth, appHandlers.PropertyHandler.ShowAddImage)
	router.POST("/propiedades/agregar-imagen/:id", requireAuth, appHandlers.PropertyHandler.UploadImage)
	router.GET("/propiedades/editar/:id", requireAuth, appHandlers.PropertyHandler.ShowEdit)
	router.POST("/propiedades/editar/:id", requireAuth, appHandlers.PropertyHandler.Edit)
	router.POST("/propiedades/eliminar/:id", requireAuth, appHandlers.PropertyHandler.Delete)
	// The dashboard toggles publication with fetch(), hence PUT + JSON.
	router.PUT("/propiedades/:id", requireAuth, appHandlers.PropertyHandler.Toggle)
	router.GET("/mensajes/:id", requireAuth, appHandlers.PropertyHandler.Messages)

	// Public listing page + inquiry form
	router.GET("/propiedad/:id", identifyUser, appHandlers.PropertyHandler.Show)
	router.POST("/propiedad/:id", identifyUser, appHandlers.PropertyHandler.SendMessage)

	// Anything else lands on the 404 page.
	router.NoRoute(identifyUser, appHandlers.AppHandler.NotFound)
}
