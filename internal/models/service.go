package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name            string  `gorm:"size:100;not null;index" json:"name"`
	Description     string  `gorm:"size:255" json:"description"`
	Price           float64 `gorm:"not null" json:"price"`
	DurationMinutes int     `gorm:"not null" json:"duration_minutes"`

	Category    string `gorm:"size:50;not null;index" json:"category"`
	IsAvailable bool   `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Conjunto fechado de categorias aceitas para um serviço.
var Categories = []string{
	"Healthcare", "Beauty & Wellness", "Fitness", "Education",
	"Technology", "Home Services", "Automotive", "Entertainment",
	"Professional Services", "Food & Dining", "Travel", "Shopping",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
