package models

import "time"

// SupplyEntry registra entrada de insumos; criar uma entrada soma a
// quantidade ao estoque do produto (na mesma transação).
type SupplyEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"product"`

	Quantity int     `gorm:"not null" json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
	Notes    string  `gorm:"size:255" json:"notes"`

	CreatedByID uint `json:"created_by_id"`
	CreatedBy   User `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
}
