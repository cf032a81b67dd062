package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
)

func TestAppointmentTransitions(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := func(string) time.Time { return now }

	t.Run("ciclo completo", func(t *testing.T) {
		repo := bookingRepo()
		ap := repo.addAppointment(1, dayAt(t, "10:00"), dayAt(t, "10:30"), domain.StatusRequested)

		confirm := NewConfirmAppointment(repo, nil, zerolog.Nop())
		confirm.NowIn = clock
		got, err := confirm.Execute(context.Background(), ap.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), got.Status)
		require.NotNil(t, got.ConfirmedAt)
		assert.Equal(t, now, *got.ConfirmedAt)

		complete := NewCompleteAppointment(repo, nil, zerolog.Nop())
		complete.NowIn = clock
		got, err = complete.Execute(context.Background(), ap.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), got.Status)
		require.NotNil(t, got.CompletedAt)
	})

	t.Run("transições inválidas", func(t *testing.T) {
		repo := bookingRepo()
		ap := repo.addAppointment(1, dayAt(t, "10:00"), dayAt(t, "10:30"), domain.StatusRequested)

		// Completar sem confirmar.
		complete := NewCompleteAppointment(repo, nil, zerolog.Nop())
		complete.NowIn = clock
		_, err := complete.Execute(context.Background(), ap.ID, 5)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))

		// Confirmar duas vezes.
		confirm := NewConfirmAppointment(repo, nil, zerolog.Nop())
		confirm.NowIn = clock
		_, err = confirm.Execute(context.Background(), ap.ID, 5)
		require.NoError(t, err)
		_, err = confirm.Execute(context.Background(), ap.ID, 5)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("cancelar libera o horário", func(t *testing.T) {
		repo := bookingRepo()
		ap := repo.addAppointment(1, dayAt(t, "10:00"), dayAt(t, "10:30"), domain.StatusConfirmed)

		cancel := NewCancelAppointment(repo, nil, nil, zerolog.Nop())
		cancel.NowIn = clock
		got, err := cancel.Execute(context.Background(), ap.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCanceled), got.Status)
		require.NotNil(t, got.CanceledAt)

		// Horário volta a ficar livre na listagem.
		avail := availabilityUC(repo, time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC))
		out, err := avail.Execute(context.Background(), AvailabilityInput{BarberID: 1, Date: testDay})
		require.NoError(t, err)
		assert.Contains(t, out.Slots, "10:00 AM")
	})

	t.Run("cancelar concluído é rejeitado", func(t *testing.T) {
		repo := bookingRepo()
		ap := repo.addAppointment(1, dayAt(t, "10:00"), dayAt(t, "10:30"), domain.StatusCompleted)

		cancel := NewCancelAppointment(repo, nil, nil, zerolog.Nop())
		cancel.NowIn = clock
		_, err := cancel.Execute(context.Background(), ap.ID, 5)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("agendamento inexistente", func(t *testing.T) {
		repo := bookingRepo()

		confirm := NewConfirmAppointment(repo, nil, zerolog.Nop())
		confirm.NowIn = clock
		_, err := confirm.Execute(context.Background(), 99, 5)
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})
}

func TestRescheduleAppointment(t *testing.T) {
	dayBefore := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	newUC := func(repo *fakeRepo) *RescheduleAppointment {
		uc := NewRescheduleAppointment(repo, nil, nil, zerolog.Nop())
		uc.NowIn = func(string) time.Time { return dayBefore }
		return uc
	}

	t.Run("mover para horário livre", func(t *testing.T) {
		repo := bookingRepo()
		ap := repo.addAppointment(1, dayAt(t, "10:00"), dayAt(t, "10:30"), domain.StatusRequested)
		uc := newUC(repo)

		got, err := uc.Execute(context.Background(), RescheduleInput{
			AppointmentID: ap.ID, ActorID: 5, Date: testDay, Time: "15:00",
		})
		require.NoError(t, err)
		assert.Equal(t, dayAt(t, "15:00"), got.StartTime)
		// Duração original preservada.
		assert.Equal(t, dayAt(t, "15:30"), got.EndTime)
	})

	t.Run("sobrepor o próprio horário antigo é permitido", func(t *testing.T) {
		repo := bookingRepo()
		ap := repo.addAppointment(1, dayAt(t, "10:00"), dayAt(t, "11:00"), domain.StatusConfirmed)
		uc := newUC(repo)

		_, err := uc.Execute(context.Background(), RescheduleInput{
			AppointmentID: ap.ID, ActorID: 5, Date: testDay, Time: "10:30",
		})
		assert.NoError(t, err)
	})

	t.Run("mover para cima de outro agendamento", func(t *testing.T) {
		repo := bookingRepo()
		repo.addAppointment(1, dayAt(t, "15:00"), dayAt(t, "16:00"), domain.StatusConfirmed)
		ap := repo.addAppointment(1, dayAt(t, "10:00"), dayAt(t, "10:30"), domain.StatusRequested)
		uc := newUC(repo)

		_, err := uc.Execute(context.Background(), RescheduleInput{
			AppointmentID: ap.ID, ActorID: 5, Date: testDay, Time: "15:30",
		})

		var rej domain.RejectionError
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, domain.ReasonOverlapsExisting, rej.Reason)
	})

	t.Run("status terminal não remarca", func(t *testing.T) {
		repo := bookingRepo()
		ap := repo.addAppointment(1, dayAt(t, "10:00"), dayAt(t, "10:30"), domain.StatusCanceled)
		uc := newUC(repo)

		_, err := uc.Execute(context.Background(), RescheduleInput{
			AppointmentID: ap.ID, ActorID: 5, Date: testDay, Time: "15:00",
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})
}
