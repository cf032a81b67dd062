package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-pos/internal/models"
)

func busyAt(t *testing.T, start, end string) BusyInterval {
	t.Helper()
	return BusyInterval{Interval: iv(t, start, end), Kind: BusyAppointment}
}

func TestHasConflict(t *testing.T) {
	busy := []BusyInterval{
		busyAt(t, "10:00", "10:30"),
		busyAt(t, "15:00", "16:00"),
	}

	_, conflict := HasConflict(iv(t, "10:15", "10:45"), busy)
	assert.True(t, conflict)

	// Encostar no fim ou no início não conflita.
	_, conflict = HasConflict(iv(t, "10:30", "11:00"), busy)
	assert.False(t, conflict)

	_, conflict = HasConflict(iv(t, "14:30", "15:00"), busy)
	assert.False(t, conflict)

	_, conflict = HasConflict(iv(t, "11:00", "11:30"), busy)
	assert.False(t, conflict)
}

func TestHasConflictIsSymmetric(t *testing.T) {
	x := iv(t, "10:00", "11:00")
	y := iv(t, "10:30", "11:30")

	_, xy := HasConflict(x, []BusyInterval{{Interval: y}})
	_, yx := HasConflict(y, []BusyInterval{{Interval: x}})

	assert.Equal(t, xy, yx)
}

func TestAppointmentBusy(t *testing.T) {
	aps := []models.Appointment{
		{ID: 1, StartTime: testDate.Add(10 * time.Hour), EndTime: testDate.Add(10*time.Hour + 30*time.Minute)},
		{ID: 2, StartTime: testDate.Add(11 * time.Hour), EndTime: testDate.Add(11 * time.Hour)},       // inconsistente
		{ID: 3, StartTime: testDate.Add(12 * time.Hour), EndTime: testDate.Add(11*time.Hour + 45*time.Minute)}, // inconsistente
		{ID: 4, StartTime: testDate.Add(14 * time.Hour), EndTime: testDate.Add(15 * time.Hour)},
	}

	busy, skipped := AppointmentBusy(aps, 0)

	require.Len(t, busy, 2)
	assert.Equal(t, uint(1), busy[0].RefID)
	assert.Equal(t, uint(4), busy[1].RefID)
	assert.Equal(t, BusyAppointment, busy[0].Kind)

	// Registros irreconciliáveis saem da comparação sem abortar nada.
	assert.Equal(t, []uint{2, 3}, skipped)
}

func TestAppointmentBusyExcludesEditedAppointment(t *testing.T) {
	aps := []models.Appointment{
		{ID: 5, StartTime: testDate.Add(10 * time.Hour), EndTime: testDate.Add(11 * time.Hour)},
	}

	busy, _ := AppointmentBusy(aps, 5)
	assert.Empty(t, busy)

	busy, _ = AppointmentBusy(aps, 0)
	assert.Len(t, busy, 1)
}

func TestWalkInBusy(t *testing.T) {
	corte := models.Product{IsService: true, DurationMin: 30}
	gel := models.Product{IsService: false, DurationMin: 0}

	orders := []models.Order{
		{
			ID:        1,
			CreatedAt: testDate.Add(10 * time.Hour),
			Items: []models.OrderItem{
				{Product: corte, Quantity: 1},
				{Product: corte, Quantity: 1},
				{Product: gel, Quantity: 3},
			},
		},
		{
			// Só produto: não ocupa a agenda.
			ID:        2,
			CreatedAt: testDate.Add(12 * time.Hour),
			Items:     []models.OrderItem{{Product: gel, Quantity: 2}},
		},
	}

	busy := WalkInBusy(orders, time.UTC)

	require.Len(t, busy, 1)
	assert.Equal(t, BusyWalkIn, busy[0].Kind)
	assert.Equal(t, uint(1), busy[0].RefID)
	assert.Equal(t, time.Hour, busy[0].Interval.Duration())
	assert.Equal(t, 10, busy[0].Interval.Start.Hour())
}
