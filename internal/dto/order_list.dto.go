package dto

import "time"

type OrderListDTO struct {
	ID          uint      `json:"id"`
	Number      string    `json:"number"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	ItemCount   int       `json:"item_count"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}
