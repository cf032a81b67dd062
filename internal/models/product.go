package models

import "time"

// Product cobre tanto produtos de venda quanto serviços.
// Serviços têm IsService = true e duração em minutos; o estoque
// só é controlado para produtos físicos.
type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CategoryID uint     `json:"category_id"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`

	Name        string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `gorm:"default:0" json:"stock"`

	IsService   bool `gorm:"default:false" json:"is_service"`
	DurationMin int  `gorm:"default:0" json:"duration_min"`

	ImageURL string `gorm:"size:255" json:"image_url"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
