package models

import "time"

// Order é uma venda de balcão (walk-in). Enquanto estiver PENDING e
// tiver serviços entre os itens, ela ocupa a agenda do barbeiro que a
// criou a partir de CreatedAt.
type Order struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Number string `gorm:"size:36;uniqueIndex;not null" json:"number"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedByID uint `gorm:"index" json:"created_by_id"`
	CreatedBy   User `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"created_by"`

	CollectedByID *uint `json:"collected_by_id"`
	CollectedBy   *User `gorm:"foreignKey:CollectedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"collected_by"`

	Items []OrderItem `json:"items"`

	TotalAmount float64 `json:"total_amount"`
	PaymentLink string  `gorm:"size:512" json:"payment_link"`

	PaidAt     *time.Time `json:"paid_at"`
	CanceledAt *time.Time `json:"canceled_at"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"index;not null" json:"order_id"`

	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product"`

	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusCanceled = "canceled"
)
