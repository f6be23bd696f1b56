package models

import "time"

type Client struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Identification string `gorm:"size:255;not null;unique" json:"identification"`
	Name           string `gorm:"size:255;not null" json:"name"`
	Email          string `gorm:"size:255;not null;unique" json:"email"`
	Phone          string `gorm:"size:20;not null" json:"phone"`
	Password       string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
