package models

// User is a registered account. Sellers and buyers share the same
// model; selling is implied by owning listings.
//
// ConfirmToken and ResetToken are deliberately separate fields so a
// pending password reset can never be mistaken for a pending email
// confirmation. Each is non-empty only while its flow is outstanding
// and cleared exactly once consumed.
type User struct {
	BaseModel
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Confirmed    bool   `gorm:"default:false"`
	ConfirmToken string `gorm:"index"`
	ResetToken   string `gorm:"index"`

	Properties []Property `gorm:"foreignKey:UserID"`
}

// PublicUser is the claim-sized projection stored in the session and
// handed to views. It never carries the password hash.
type PublicUser struct {
	ID   string
	Name string
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name}
}
