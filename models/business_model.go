package models

import "time"

type Business struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	Nit                 string `gorm:"size:255;not null;unique" json:"nit"`
	BusinessName        string `gorm:"size:255;not null" json:"business_name"`
	OwnerIdentification string `gorm:"size:255;not null" json:"owner_identification"`
	OwnerName           string `gorm:"size:255;not null" json:"owner_name"`
	Email               string `gorm:"size:255;not null;unique" json:"email"`
	Phone               string `gorm:"size:20;not null" json:"phone"`
	BusinessAddress     string `gorm:"size:255;not null" json:"business_address"`
	Password            string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
