package dto

// PropertyForm binds the listing create/edit form. All fields stay
// strings so a failed validation can re-render the form with exactly
// what the user typed; the service converts on success.
type PropertyForm struct {
	Title       string `form:"titulo" validate:"required"`
	Description string `form:"descripcion" validate:"required,max=200"`
	Rooms       string `form:"habitaciones" validate:"required,numeric"`
	Parking     string `form:"estacionamiento" validate:"required,numeric"`
	Bathrooms   string `form:"wc" validate:"required,numeric"`
	Street      string `form:"calle" validate:"required"`
	Lat         string `form:"lat" validate:"required"`
	Lng         string `form:"lng" validate:"required"`
	Price       string `form:"precio" validate:"required,numeric"`
	Category    string `form:"categoria" validate:"required,numeric"`
}

// OwnerPage is the paginated seller dashboard payload.
type OwnerPage struct {
	Properties  []PropertySummary
	CurrentPage int
	TotalPages  int
	Total       int64
	Limit       int
	Offset      int
}

// PropertySummary is what the dashboard table needs per row.
type PropertySummary struct {
	ID           string
	Title        string
	Image        string
	Published    bool
	CategoryName string
	PriceName    string
	MessageCount int
}
