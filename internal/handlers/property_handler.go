package handlers

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"bienesraices/internal/logger"
	"bienesraices/internal/middleware"
	"bienesraices/internal/services"
	"bienesraices/internal/services/dto"
	"bienesraices/pkg/apperrors"
)

// Dashboard pages are a single digit 1-9; anything else goes back to
// page 1.
var pageExpr = regexp.MustCompile(`^[1-9]$`)

// UploadLimits caps the attach-image endpoint.
type UploadLimits struct {
	MaxSize      int64
	AllowedTypes []string
}

// PropertyHandler serves the seller dashboard, the listing lifecycle
// and the public listing page with its inquiry form.
type PropertyHandler struct {
	*BaseHandler
	propertyService services.PropertyService
	messageService  services.MessageService
	limits          UploadLimits
}

func NewPropertyHandler(
	base *BaseHandler,
	propertyService services.PropertyService,
	messageService services.MessageService,
	limits UploadLimits,
) *PropertyHandler {
	return &PropertyHandler{
		BaseHandler:     base,
		propertyService: propertyService,
		messageService:  messageService,
		limits:          limits,
	}
}

// Dashboard renders the paginated "mis propiedades" view.
func (h *PropertyHandler) Dashboard(c *gin.Context) {
	pageParam := c.Query("pagina")
	if !pageExpr.MatchString(pageParam) {
		c.Redirect(http.StatusFound, "/mis-propiedades?pagina=1")
		return
	}
	page := int(pageParam[0] - '0')

	user := middleware.CurrentUser(c)

	result, err := h.propertyService.ListByOwner(user.ID, page)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.HTML(c, http.StatusOK, "admin.html", gin.H{
		"pagina":       "Mis Propiedades",
		"propiedades":  result.Properties,
		"paginas":      result.TotalPages,
		"paginaActual": result.CurrentPage,
		"total":        result.Total,
		"offset":       result.Offset,
		"limit":        result.Limit,
	})
}

func (h *PropertyHandler) ShowCreate(c *gin.Context) {
	h.renderCreateForm(c, nil, &dto.PropertyForm{})
}

// Create validates the form and persists the listing unpublished. On
// success the seller moves on to the attach-image step.
func (h *PropertyHandler) Create(c *gin.Context) {
	var form dto.PropertyForm
	if vErr := h.BindForm(c, &form); vErr != nil {
		h.renderCreateForm(c, vErr.Messages(), &form)
		return
	}

	user := middleware.CurrentUser(c)

	property, err := h.propertyService.Create(user.ID, &form)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/propiedades/agregar-imagen/"+property.ID)
}

func (h *PropertyHandler) ShowAddImage(c *gin.Context) {
	user := middleware.CurrentUser(c)

	property, err := h.propertyService.GetUnpublishedOwned(c.Param("id"), user.ID)
	if err != nil {
		h.RedirectToDashboard(c)
		return
	}

	h.HTML(c, http.StatusOK, "agregar-imagen.html", gin.H{
		"pagina":    "Agregar imagen: " + property.Title,
		"propiedad": property,
	})
}

// UploadImage stores the uploaded file and publishes the listing.
func (h *PropertyHandler) UploadImage(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		h.RedirectToDashboard(c)
		return
	}

	if h.limits.MaxSize > 0 && fileHeader.Size > h.limits.MaxSize {
		h.RedirectToDashboard(c)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if len(h.limits.AllowedTypes) > 0 && !contains(h.limits.AllowedTypes, contentType) {
		h.RedirectToDashboard(c)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	err = h.propertyService.AttachImage(c.Request.Context(), id, user.ID,
		fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to attach image", err, "property_id", id)
		h.RedirectToDashboard(c)
		return
	}

	h.RedirectToDashboard(c)
}

func (h *PropertyHandler) ShowEdit(c *gin.Context) {
	user := middleware.CurrentUser(c)

	property, err := h.propertyService.GetOwned(c.Param("id"), user.ID)
	if err != nil {
		h.RedirectToDashboard(c)
		return
	}

	h.renderEditForm(c, property.Title, nil, &dto.PropertyForm{
		Title:       property.Title,
		Description: property.Description,
		Rooms:       itoa(property.Rooms),
		Parking:     itoa(property.Parking),
		Bathrooms:   itoa(property.Bathrooms),
		Street:      property.Street,
		Lat:         property.Lat,
		Lng:         property.Lng,
		Price:       utoa(property.PriceID),
		Category:    utoa(property.CategoryID),
	})
}

// Edit overwrites the mutable fields of an owned listing.
func (h *PropertyHandler) Edit(c *gin.Context) {
	var form dto.PropertyForm
	if vErr := h.BindForm(c, &form); vErr != nil {
		h.renderEditForm(c, "", vErr.Messages(), &form)
		return
	}

	user := middleware.CurrentUser(c)

	if err := h.propertyService.Update(c.Param("id"), user.ID, &form); err != nil {
		h.RedirectToDashboard(c)
		return
	}

	h.RedirectToDashboard(c)
}

// Delete removes an owned listing, its stored image and its messages.
func (h *PropertyHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	err := h.propertyService.Delete(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to delete listing", err, "property_id", c.Param("id"))
	}

	h.RedirectToDashboard(c)
}

// Toggle flips the publication flag. This is the one JSON endpoint;
// the dashboard button calls it with fetch().
func (h *PropertyHandler) Toggle(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if _, err := h.propertyService.TogglePublished(c.Param("id"), user.ID); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"resultado": true})
}

// Show renders the public listing page. Visitors may be anonymous;
// owners get the isSeller capability flag but no publication bypass.
func (h *PropertyHandler) Show(c *gin.Context) {
	property, err := h.propertyService.GetPublished(c.Param("id"))
	if err != nil {
		h.RedirectNotFound(c)
		return
	}

	userID := ""
	if user := middleware.CurrentUser(c); user != nil {
		userID = user.ID
	}

	h.HTML(c, http.StatusOK, "mostrar.html", gin.H{
		"pagina":     property.Title,
		"propiedad":  property,
		"esVendedor": services.IsSeller(userID, property.UserID),
	})
}

// SendMessage records an inquiry. Anonymous visitors are sent to the
// login page instead of letting the insert fail on a missing sender.
func (h *PropertyHandler) SendMessage(c *gin.Context) {
	property, err := h.propertyService.GetPublished(c.Param("id"))
	if err != nil {
		h.RedirectNotFound(c)
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	var form dto.MessageForm
	if vErr := h.BindForm(c, &form); vErr != nil {
		h.HTML(c, http.StatusOK, "mostrar.html", gin.H{
			"pagina":     property.Title,
			"propiedad":  property,
			"esVendedor": services.IsSeller(user.ID, property.UserID),
			"errores":    vErr.Messages(),
		})
		return
	}

	if err := h.messageService.Create(property.ID, user.ID, &form); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Messages renders the inbox of an owned listing.
func (h *PropertyHandler) Messages(c *gin.Context) {
	user := middleware.CurrentUser(c)

	messages, err := h.propertyService.MessagesFor(c.Param("id"), user.ID)
	if err != nil {
		h.RedirectToDashboard(c)
		return
	}

	h.HTML(c, http.StatusOK, "mensajes.html", gin.H{
		"pagina":   "Mensajes",
		"mensajes": messages,
	})
}

func (h *PropertyHandler) renderCreateForm(c *gin.Context, errores []string, form *dto.PropertyForm) {
	categories, prices, err := h.propertyService.Catalog()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.HTML(c, http.StatusOK, "crear.html", gin.H{
		"pagina":     "Crear Propiedad",
		"categorias": categories,
		"precios":    prices,
		"errores":    errores,
		"datos":      form,
	})
}

func (h *PropertyHandler) renderEditForm(c *gin.Context, title string, errores []string, form *dto.PropertyForm) {
	categories, prices, err := h.propertyService.Catalog()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	pagina := "Editar Propiedad"
	if title != "" {
		pagina = "Editar Propiedad: " + title
	}

	h.HTML(c, http.StatusOK, "editar.html", gin.H{
		"pagina":     pagina,
		"categorias": categories,
		"precios":    prices,
		"errores":    errores,
		"datos":      form,
	})
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func utoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
