package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	FullName string `gorm:"size:100;not null" json:"full_name"`
	Phone    string `gorm:"size:20" json:"phone"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
