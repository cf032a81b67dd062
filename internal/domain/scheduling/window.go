package scheduling

import "time"

// Antecedências herdadas do sistema original. A validação de
// agendamento usa 1h contada a partir de agora; a listagem pública de
// horários usa 2h contadas do início do expediente e ainda corta as
// últimas 2h do dia. A divergência é conhecida e fica preservada até
// decisão de produto — não unificar por conta própria.
const (
	ValidationLeadTime  = 1 * time.Hour
	EnumerationLeadTime = 2 * time.Hour
	EnumerationCutoff   = 2 * time.Hour

	// Passo fixo dos horários ofertados na página pública.
	SlotStep = 30 * time.Minute
)

// BookingWindow calcula a janela de horários ofertáveis do dia.
// A antecedência só entra quando a data consultada é o dia corrente;
// o corte do fim do expediente vale sempre. Janela vazia é um
// resultado válido (nenhum horário), nunca um erro.
func BookingWindow(sched *DaySchedule, now time.Time, lead, cutoff time.Duration) Interval {
	lower := sched.Work.Start
	if SameLocalDate(sched.Date, now) {
		lower = lower.Add(lead)
	}

	upper := sched.Work.End.Add(-cutoff)

	return Interval{Start: lower, End: upper}
}
