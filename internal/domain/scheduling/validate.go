package scheduling

import "time"

// Reason identifica por que um pedido de agendamento foi recusado.
// São recusas de negócio esperadas, devolvidas ao usuário final; não
// são erros de infraestrutura.
type Reason string

const (
	ReasonNotWorkingThisDay Reason = "not_working_this_day"
	ReasonOutsideLeadTime   Reason = "outside_lead_time"
	ReasonOutsideShift      Reason = "outside_shift"
	ReasonOverlapsExisting  Reason = "overlaps_existing"
	ReasonOverlapsWalkIn    Reason = "overlaps_walkin"
)

type RejectionError struct {
	Reason Reason
}

func (e RejectionError) Error() string {
	return string(e.Reason)
}

// BookingCandidate reúne tudo que a validação precisa, já resolvido
// pelo chamador: agenda do dia (nil quando o barbeiro não trabalha),
// intervalo pretendido, trechos ocupados e o relógio corrente no fuso
// da barbearia.
type BookingCandidate struct {
	Schedule *DaySchedule
	Slot     Interval
	Busy     []BusyInterval
	Now      time.Time
}

// Validate decide se o candidato pode virar agendamento. Retorna nil
// ou um RejectionError com o motivo específico.
//
// A antecedência mínima (1h) só vale quando a data pedida é o dia
// corrente. Sobreposição com o almoço conta como fora do expediente.
func Validate(in BookingCandidate) error {
	// Data já passada nunca é agendável; no dia corrente quem decide é
	// a antecedência mínima logo abaixo.
	if in.Slot.Start.Before(in.Now) && !SameLocalDate(in.Slot.Start, in.Now) {
		return RejectionError{Reason: ReasonOutsideLeadTime}
	}

	if in.Schedule == nil {
		return RejectionError{Reason: ReasonNotWorkingThisDay}
	}

	if SameLocalDate(in.Schedule.Date, in.Now) &&
		in.Slot.Start.Before(in.Now.Add(ValidationLeadTime)) {
		return RejectionError{Reason: ReasonOutsideLeadTime}
	}

	if !in.Schedule.Work.Contains(in.Slot) {
		return RejectionError{Reason: ReasonOutsideShift}
	}

	if in.Schedule.Lunch != nil && in.Slot.Overlaps(*in.Schedule.Lunch) {
		return RejectionError{Reason: ReasonOutsideShift}
	}

	if b, conflict := HasConflict(in.Slot, in.Busy); conflict {
		if b.Kind == BusyWalkIn {
			return RejectionError{Reason: ReasonOverlapsWalkIn}
		}
		return RejectionError{Reason: ReasonOverlapsExisting}
	}

	return nil
}
