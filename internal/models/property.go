package models

// Category is static reference data seeded at deployment
// (casas, departamentos, bodegas, ...). Not user-mutable.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

// Price is a static price tier (0-50k, 50k-100k, ...).
type Price struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

// Property is a listing. It is created unpublished and without an
// image; Published becomes true exactly when an image is attached.
type Property struct {
	BaseModel
	Title       string `gorm:"not null"`
	Description string `gorm:"size:200;not null"`
	Rooms       int    `gorm:"not null"`
	Parking     int    `gorm:"not null"`
	Bathrooms   int    `gorm:"not null"`
	Street      string `gorm:"not null"`
	Lat         string `gorm:"not null"`
	Lng         string `gorm:"not null"`
	Image       string `gorm:"default:''"`
	Published   bool   `gorm:"default:false"`

	PriceID    uint   `gorm:"not null"`
	CategoryID uint   `gorm:"not null"`
	UserID     string `gorm:"type:varchar(36);not null;index"`

	Price    *Price    `gorm:"foreignKey:PriceID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
	Messages []Message `gorm:"foreignKey:PropertyID"`
}

// IsOwnedBy compares owner and session identity as strings. Both sides
// are UUID strings end-to-end, so no numeric conversion is involved.
func (p *Property) IsOwnedBy(userID string) bool {
	return userID != "" && p.UserID == userID
}
