package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bienesraices/internal/services"
	"bienesraices/pkg/apperrors"
)

// AppHandler serves the public pages: home, category listings, the
// title search and the 404 view.
type AppHandler struct {
	*BaseHandler
	propertyService services.PropertyService
}

func NewAppHandler(base *BaseHandler, propertyService services.PropertyService) *AppHandler {
	return &AppHandler{
		BaseHandler:     base,
		propertyService: propertyService,
	}
}

// Home renders the landing page: all categories and price tiers plus
// the three newest listings of the two featured categories.
func (h *AppHandler) Home(c *gin.Context) {
	data, err := h.propertyService.HomePage()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.HTML(c, http.StatusOK, "inicio.html", gin.H{
		"pagina":        "Inicio",
		"categorias":    data.Categories,
		"precios":       data.Prices,
		"casas":         data.Houses,
		"departamentos": data.Apartments,
	})
}

// Category lists every listing of one category. Unknown ids land on
// the 404 page.
func (h *AppHandler) Category(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.RedirectNotFound(c)
		return
	}

	category, properties, svcErr := h.propertyService.ListByCategory(uint(id))
	if svcErr != nil {
		if appErr, ok := apperrors.AsAppError(svcErr); ok && appErr.Code == apperrors.CodeNotFound {
			h.RedirectNotFound(c)
			return
		}
		apperrors.HandleError(c, svcErr)
		return
	}

	h.HTML(c, http.StatusOK, "categoria.html", gin.H{
		"pagina":      category.Name + "s en venta",
		"propiedades": properties,
	})
}

// Search handles the search form. A blank term bounces straight back
// without touching the database.
func (h *AppHandler) Search(c *gin.Context) {
	term := c.PostForm("termino")

	if strings.TrimSpace(term) == "" {
		back := c.Request.Referer()
		if back == "" {
			back = "/"
		}
		c.Redirect(http.StatusFound, back)
		return
	}

	properties, err := h.propertyService.Search(term)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.HTML(c, http.StatusOK, "busqueda.html", gin.H{
		"pagina":      "Resultados de la búsqueda",
		"propiedades": properties,
	})
}

// NotFound renders the 404 page.
func (h *AppHandler) NotFound(c *gin.Context) {
	h.HTML(c, http.StatusNotFound, "404.html", gin.H{
		"pagina": "No Encontrada",
	})
}
