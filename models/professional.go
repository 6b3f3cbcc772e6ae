package models

import (
	"gorm.io/gorm"
)

type Professional struct {
	gorm.Model
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
	Slots     []Slot `json:"slots,omitempty" gorm:"foreignKey:ProfessionalID"`
}
