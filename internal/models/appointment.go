package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Código usado pelo cliente para consultar o agendamento público.
	ReferenceCode string `gorm:"size:36;uniqueIndex" json:"reference_code"`

	BarberID uint          `gorm:"index:idx_appointment_barber_date" json:"barber_id"`
	Barber   BarberProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`
	ClientEmail string `gorm:"size:100" json:"client_email"`

	// Date é a meia-noite local do dia agendado; StartTime/EndTime são
	// instantes absolutos (EndTime cai no dia seguinte quando o
	// atendimento vira a madrugada).
	Date      time.Time `gorm:"index:idx_appointment_barber_date" json:"date"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Services    []Product `gorm:"many2many:appointment_services;" json:"services"`
	TotalAmount float64   `json:"total_amount"`

	Status string `gorm:"size:20;default:'requested'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CanceledAt  *time.Time `json:"canceled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
