package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-pos/internal/models"
)

// Cenário: expediente 09:00–18:00 sem almoço, um agendamento
// 10:00–10:30, consulta às 08:00 do próprio dia. A antecedência de 2h
// sobre o início do expediente empurra o primeiro horário para 11:00.
func TestEnumerateSlotsSameDay(t *testing.T) {
	sched := workingDay(t)
	now := testDate.Add(8 * time.Hour)
	busy := []BusyInterval{busyAt(t, "10:00", "10:30")}

	window := BookingWindow(sched, now, EnumerationLeadTime, EnumerationCutoff)
	slots := FormatSlots(EnumerateSlots(sched, window, SlotStep, busy, now))

	require.NotEmpty(t, slots)
	assert.Equal(t, "11:00 AM", slots[0])
	assert.NotContains(t, slots, "10:00 AM")
	assert.Contains(t, slots, "11:00 AM")

	// Último início possível: 15:30, pois 16:00 + 30min passa do corte.
	assert.Equal(t, "03:30 PM", slots[len(slots)-1])
}

func TestEnumerateSlotsSkipsLunch(t *testing.T) {
	sched := ResolveDay(&models.WorkSchedule{
		StartHour:  "09:00",
		EndHour:    "18:00",
		LunchStart: "13:00",
		LunchEnd:   "14:00",
	}, testDate)
	require.NotNil(t, sched)

	now := testDate.AddDate(0, 0, -1)
	window := BookingWindow(sched, now, EnumerationLeadTime, EnumerationCutoff)
	slots := FormatSlots(EnumerateSlots(sched, window, SlotStep, nil, now))

	assert.NotContains(t, slots, "01:00 PM")
	assert.NotContains(t, slots, "01:30 PM")
	// Encostar no início do almoço é permitido (12:30–13:00).
	assert.Contains(t, slots, "12:30 PM")
	assert.Contains(t, slots, "02:00 PM")
}

func TestEnumerateSlotsSkipsPastTimesToday(t *testing.T) {
	sched := workingDay(t)
	// 14:10 do próprio dia: janela começa 11:00 mas horários já
	// passados caem.
	now := testDate.Add(14*time.Hour + 10*time.Minute)

	window := BookingWindow(sched, now, EnumerationLeadTime, EnumerationCutoff)
	slots := EnumerateSlots(sched, window, SlotStep, nil, now)

	require.NotEmpty(t, slots)
	assert.False(t, slots[0].Before(now))
	assert.Equal(t, "02:30 PM", slots[0].Format(SlotFormat))
}

// Propriedades: nenhum horário emitido conflita, nenhum sai da
// janela, a ordem é crescente sem duplicatas e a enumeração é
// idempotente.
func TestEnumerateSlotsProperties(t *testing.T) {
	sched := ResolveDay(&models.WorkSchedule{
		StartHour:  "09:00",
		EndHour:    "18:00",
		LunchStart: "13:00",
		LunchEnd:   "14:00",
	}, testDate)
	require.NotNil(t, sched)

	now := testDate.AddDate(0, 0, -2)
	busy := []BusyInterval{
		busyAt(t, "09:30", "10:15"),
		busyAt(t, "15:00", "16:30"),
		{Interval: iv(t, "11:00", "11:45"), Kind: BusyWalkIn},
	}

	window := BookingWindow(sched, now, EnumerationLeadTime, EnumerationCutoff)
	slots := EnumerateSlots(sched, window, SlotStep, busy, now)
	again := EnumerateSlots(sched, window, SlotStep, busy, now)

	assert.Equal(t, slots, again)

	for i, s := range slots {
		slot := Interval{Start: s, End: s.Add(SlotStep)}

		_, conflict := HasConflict(slot, busy)
		assert.False(t, conflict, "slot %s conflita", s)

		assert.False(t, s.Before(window.Start), "slot %s antes da janela", s)
		assert.False(t, slot.End.After(window.End), "slot %s depois da janela", s)

		if i > 0 {
			assert.True(t, slots[i-1].Before(s), "ordem não crescente")
		}
	}
}

func TestEnumerateSlotsNilSchedule(t *testing.T) {
	assert.Nil(t, EnumerateSlots(nil, Interval{}, SlotStep, nil, testDate))
}

// Data já passada não oferta horário nenhum, mesmo com expediente
// cadastrado e agenda livre.
func TestEnumerateSlotsPastDateYieldsNothing(t *testing.T) {
	sched := workingDay(t)

	// Relógio uma semana depois da data consultada.
	now := testDate.AddDate(0, 0, 7).Add(10 * time.Hour)

	window := BookingWindow(sched, now, EnumerationLeadTime, EnumerationCutoff)
	slots := EnumerateSlots(sched, window, SlotStep, nil, now)

	assert.Empty(t, slots)

	// Ontem também.
	now = testDate.AddDate(0, 0, 1).Add(8 * time.Hour)
	window = BookingWindow(sched, now, EnumerationLeadTime, EnumerationCutoff)
	assert.Empty(t, EnumerateSlots(sched, window, SlotStep, nil, now))
}
