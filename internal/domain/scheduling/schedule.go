package scheduling

import (
	"time"

	"github.com/BruksfildServices01/barber-pos/internal/models"
)

// DaySchedule é o expediente de um barbeiro resolvido para uma data
// concreta: janela de trabalho e, se houver, janela de almoço, ambas
// com instantes absolutos no fuso da barbearia.
type DaySchedule struct {
	BarberID uint
	Date     time.Time
	Work     Interval
	Lunch    *Interval
}

// ResolveDay transforma o registro de expediente do dia da semana na
// agenda da data. Retorna nil quando o barbeiro não trabalha nesse
// dia ou quando o registro está malformado — para o chamador os dois
// casos significam "nenhum horário disponível".
func ResolveDay(ws *models.WorkSchedule, date time.Time) *DaySchedule {
	if ws == nil {
		return nil
	}

	start, err := ParseClock(date, ws.StartHour)
	if err != nil {
		return nil
	}
	end, err := ParseClock(date, ws.EndHour)
	if err != nil {
		return nil
	}

	work := NewInterval(date, start, end)
	if work.Empty() {
		return nil
	}

	sched := &DaySchedule{
		BarberID: ws.BarberID,
		Date:     At(date, time.Time{}),
		Work:     work,
	}

	// Almoço malformado ou fora do expediente é ignorado em vez de
	// derrubar a consulta inteira.
	if ws.LunchStart != "" && ws.LunchEnd != "" {
		ls, errS := ParseClock(date, ws.LunchStart)
		le, errE := ParseClock(date, ws.LunchEnd)
		if errS == nil && errE == nil {
			lunch := NewInterval(date, ls, le)
			if !lunch.Empty() && work.Contains(lunch) {
				sched.Lunch = &lunch
			}
		}
	}

	return sched
}
