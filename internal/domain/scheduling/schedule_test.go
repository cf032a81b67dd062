package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-pos/internal/models"
)

func TestResolveDayNotWorking(t *testing.T) {
	assert.Nil(t, ResolveDay(nil, testDate))
}

func TestResolveDayMalformedHours(t *testing.T) {
	assert.Nil(t, ResolveDay(&models.WorkSchedule{StartHour: "", EndHour: "18:00"}, testDate))
	assert.Nil(t, ResolveDay(&models.WorkSchedule{StartHour: "9am", EndHour: "18:00"}, testDate))
	assert.Nil(t, ResolveDay(&models.WorkSchedule{StartHour: "09:00", EndHour: "09:00"}, testDate))
}

func TestResolveDayBasic(t *testing.T) {
	sched := ResolveDay(&models.WorkSchedule{
		BarberID:   7,
		StartHour:  "09:00",
		EndHour:    "18:00",
		LunchStart: "13:00",
		LunchEnd:   "14:00",
	}, testDate)

	require.NotNil(t, sched)
	assert.Equal(t, uint(7), sched.BarberID)
	assert.Equal(t, 9, sched.Work.Start.Hour())
	assert.Equal(t, 18, sched.Work.End.Hour())

	require.NotNil(t, sched.Lunch)
	assert.Equal(t, 13, sched.Lunch.Start.Hour())
	assert.Equal(t, 14, sched.Lunch.End.Hour())
}

func TestResolveDayOvernightShift(t *testing.T) {
	sched := ResolveDay(&models.WorkSchedule{
		StartHour: "20:00",
		EndHour:   "02:00",
	}, testDate)

	require.NotNil(t, sched)
	assert.Equal(t, 6*time.Hour, sched.Work.Duration())
	assert.Equal(t, testDate.Day()+1, sched.Work.End.Day())
}

func TestResolveDayDropsBrokenLunch(t *testing.T) {
	tests := []struct {
		name string
		ws   models.WorkSchedule
	}{
		{
			name: "almoço malformado",
			ws:   models.WorkSchedule{StartHour: "09:00", EndHour: "18:00", LunchStart: "meio-dia", LunchEnd: "14:00"},
		},
		{
			name: "almoço fora do expediente",
			ws:   models.WorkSchedule{StartHour: "09:00", EndHour: "18:00", LunchStart: "18:30", LunchEnd: "19:00"},
		},
		{
			name: "almoço de comprimento zero",
			ws:   models.WorkSchedule{StartHour: "09:00", EndHour: "18:00", LunchStart: "13:00", LunchEnd: "13:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := ResolveDay(&tt.ws, testDate)
			require.NotNil(t, sched)
			assert.Nil(t, sched.Lunch)
		})
	}
}
