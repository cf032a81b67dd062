package scheduling

import "time"

// SlotFormat é o formato exibido na página pública ("11:00 AM").
const SlotFormat = "03:04 PM"

// EnumerateSlots percorre a janela em passos fixos e devolve os
// inícios de horário livres, em ordem crescente. Um candidato cai
// quando sobrepõe o almoço, quando conflita com a agenda ocupada ou
// quando, no dia corrente, já ficou para trás do relógio.
func EnumerateSlots(
	sched *DaySchedule,
	window Interval,
	step time.Duration,
	busy []BusyInterval,
	now time.Time,
) []time.Time {

	if sched == nil || step <= 0 {
		return nil
	}

	today := SameLocalDate(sched.Date, now)

	// Data já passada não oferta nada.
	if !today && sched.Date.Before(now) {
		return nil
	}

	var out []time.Time
	for cur := window.Start; !cur.Add(step).After(window.End); cur = cur.Add(step) {
		slot := Interval{Start: cur, End: cur.Add(step)}

		if sched.Lunch != nil && slot.Overlaps(*sched.Lunch) {
			continue
		}

		if _, conflict := HasConflict(slot, busy); conflict {
			continue
		}

		if today && cur.Before(now) {
			continue
		}

		out = append(out, cur)
	}

	return out
}

// FormatSlots converte os inícios livres para o formato da página
// pública, preservando a ordem.
func FormatSlots(slots []time.Time) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Format(SlotFormat))
	}
	return out
}
