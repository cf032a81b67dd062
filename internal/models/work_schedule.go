package models

import "time"

// WorkSchedule define o expediente de um barbeiro para um dia da
// semana (segunda = 0). No máximo um registro por (barbeiro, dia).
// Horários no formato "15:04"; expediente que vira a madrugada tem
// EndHour menor que StartHour.
type WorkSchedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint          `gorm:"uniqueIndex:idx_barber_weekday;not null" json:"barber_id"`
	Barber   BarberProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Weekday int `gorm:"uniqueIndex:idx_barber_weekday;not null" json:"weekday"`

	StartHour string `gorm:"size:5;not null" json:"start_hour"`
	EndHour   string `gorm:"size:5;not null" json:"end_hour"`

	LunchStart string `gorm:"size:5" json:"lunch_start"`
	LunchEnd   string `gorm:"size:5" json:"lunch_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
