package dto

import "time"

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	ReferenceCode string    `json:"reference_code"`
	Date          time.Time `json:"date"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	ClientName    string    `json:"client_name"`
	Services      []string  `json:"services"`
	TotalAmount   float64   `json:"total_amount"`
}
