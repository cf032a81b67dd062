package scheduling

import (
	"time"

	"github.com/BruksfildServices01/barber-pos/internal/models"
)

type BusyKind string

const (
	BusyAppointment BusyKind = "appointment"
	BusyWalkIn      BusyKind = "walk_in"
)

// BusyInterval é um trecho já ocupado da agenda do barbeiro, vindo de
// um agendamento ativo ou de uma ordem walk-in pendente.
type BusyInterval struct {
	Interval Interval
	Kind     BusyKind
	RefID    uint
}

// HasConflict devolve o primeiro trecho ocupado que sobrepõe o
// candidato. Semiaberto: candidato que termina exatamente quando
// outro começa não conflita.
func HasConflict(candidate Interval, busy []BusyInterval) (BusyInterval, bool) {
	for _, b := range busy {
		if candidate.Overlaps(b.Interval) {
			return b, true
		}
	}
	return BusyInterval{}, false
}

// AppointmentBusy monta os trechos ocupados a partir dos agendamentos
// ativos do dia, pulando o agendamento em edição (excludeID) e
// registros cujo intervalo gravado não fecha (fim não depois do
// início) — esses são devolvidos em skipped para o chamador logar,
// nunca abortam a consulta.
func AppointmentBusy(aps []models.Appointment, excludeID uint) (busy []BusyInterval, skipped []uint) {
	for _, ap := range aps {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if !ap.EndTime.After(ap.StartTime) {
			skipped = append(skipped, ap.ID)
			continue
		}
		busy = append(busy, BusyInterval{
			Interval: Interval{Start: ap.StartTime, End: ap.EndTime},
			Kind:     BusyAppointment,
			RefID:    ap.ID,
		})
	}
	return busy, skipped
}

// WalkInBusy monta os trechos ocupados pelas ordens walk-in pendentes
// do barbeiro: cada ordem ocupa [created_at, created_at + Σ duração
// dos serviços × quantidade). Ordens só de produto (duração zero) não
// ocupam a agenda.
func WalkInBusy(orders []models.Order, loc *time.Location) []BusyInterval {
	var busy []BusyInterval
	for _, o := range orders {
		var minutes int
		for _, item := range o.Items {
			if item.Product.IsService {
				minutes += item.Product.DurationMin * item.Quantity
			}
		}
		if minutes <= 0 {
			continue
		}

		start := o.CreatedAt.In(loc)
		busy = append(busy, BusyInterval{
			Interval: Interval{
				Start: start,
				End:   start.Add(time.Duration(minutes) * time.Minute),
			},
			Kind:  BusyWalkIn,
			RefID: o.ID,
		})
	}
	return busy
}
