package models

// Message is a buyer inquiry against a listing. Messages are only ever
// created through the public listing page; there is no update or
// delete surface for them.
type Message struct {
	BaseModel
	Body       string `gorm:"size:1000;not null"`
	PropertyID string `gorm:"type:varchar(36);not null;index"`
	UserID     string `gorm:"type:varchar(36);not null;index"`

	User     *User     `gorm:"foreignKey:UserID"`
	Property *Property `gorm:"foreignKey:PropertyID"`
}
