package models

import (
	"gorm.io/gorm"
)

// Profile is the one-to-one companion of a User, created alongside it at
// registration and deleted with it.
type Profile struct {
	gorm.Model
	UserID     uint           `json:"user_id" gorm:"unique"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	PictureURL string         `json:"picture_url"`
	Favorites  []Professional `json:"favorites,omitempty" gorm:"many2many:profile_favorites;"`
}

// FullName joins first and last name for display.
func (p *Profile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
