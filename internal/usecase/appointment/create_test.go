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

// Terça-feira, 2026-03-10 (weekday 1 com segunda = 0).
const (
	testDay     = "2026-03-10"
	testWeekday = domain.Weekday(1)
)

func dayAt(t *testing.T, hm string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", testDay+" "+hm, time.UTC)
	require.NoError(t, err)
	return ts
}

// bookingRepo monta o cenário padrão: barbeiro 1 (usuário 10) com
// expediente de terça 09:00–18:00 e almoço 12:00–13:00, corte de 30
// minutos cadastrado como serviço 1.
func bookingRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.addBarber(1, 10)
	repo.addSchedule(1, testWeekday, "09:00", "18:00", "12:00", "13:00")
	repo.addService(1, "Corte", 50, 30)
	repo.addService(2, "Barba", 30, 30)
	return repo
}

func createUC(repo *fakeRepo, now time.Time) *CreateAppointment {
	uc := NewCreateAppointment(repo, nil, nil, zerolog.Nop())
	uc.NowIn = func(string) time.Time { return now }
	return uc
}

func TestCreateAppointment(t *testing.T) {
	// Relógio no dia anterior: antecedência mínima não entra em jogo.
	dayBefore := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

	t.Run("agendamento válido", func(t *testing.T) {
		repo := bookingRepo()
		uc := createUC(repo, dayBefore)

		ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID:   1,
			ClientName: "João",
			ServiceIDs: []uint{1, 2},
			Date:       testDay,
			Time:       "10:00",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, ap.ReferenceCode)
		assert.Equal(t, string(domain.StatusRequested), ap.Status)
		assert.Equal(t, dayAt(t, "10:00"), ap.StartTime)
		// 30 + 30 minutos de serviço.
		assert.Equal(t, dayAt(t, "11:00"), ap.EndTime)
		assert.Equal(t, float64(80), ap.TotalAmount)
		assert.Equal(t, 1, repo.transactions)
	})

	t.Run("sem serviços", func(t *testing.T) {
		uc := createUC(bookingRepo(), dayBefore)

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1, Date: testDay, Time: "10:00",
		})
		assert.True(t, httperr.IsBusiness(err, "services_required"))
	})

	t.Run("serviço inexistente", func(t *testing.T) {
		uc := createUC(bookingRepo(), dayBefore)

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1, ServiceIDs: []uint{99}, Date: testDay, Time: "10:00",
		})
		assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	})

	t.Run("barbeiro inexistente", func(t *testing.T) {
		uc := createUC(bookingRepo(), dayBefore)

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 9, ServiceIDs: []uint{1}, Date: testDay, Time: "10:00",
		})
		assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
	})

	t.Run("data e hora inválidas", func(t *testing.T) {
		uc := createUC(bookingRepo(), dayBefore)

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1, ServiceIDs: []uint{1}, Date: "10/03/2026", Time: "10:00",
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_date"))

		_, err = uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1, ServiceIDs: []uint{1}, Date: testDay, Time: "10h00",
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_time"))
	})

	t.Run("data passada", func(t *testing.T) {
		// Relógio uma semana depois da data pedida.
		uc := createUC(bookingRepo(), time.Date(2026, 3, 17, 10, 0, 0, 0, time.UTC))

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1, ServiceIDs: []uint{1}, Date: testDay, Time: "10:00",
		})

		var rej domain.RejectionError
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, domain.ReasonOutsideLeadTime, rej.Reason)
	})

	t.Run("dia de folga", func(t *testing.T) {
		uc := createUC(bookingRepo(), dayBefore)

		// 2026-03-11 é quarta; só há expediente cadastrado na terça.
		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1, ServiceIDs: []uint{1}, Date: "2026-03-11", Time: "10:00",
		})

		var rej domain.RejectionError
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, domain.ReasonNotWorkingThisDay, rej.Reason)
	})

	t.Run("antecedência mínima no dia corrente", func(t *testing.T) {
		repo := bookingRepo()
		// Agora é 09:30 do próprio dia: 10:00 fica a menos de 1h.
		uc := createUC(repo, dayAt(t, "09:30"))

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1, ServiceIDs: []uint{1}, Date: testDay, Time: "10:00",
		})

		var rej domain.RejectionError
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, domain.ReasonOutsideLeadTime, rej.Reason)

		// 11:00 já respeita a antecedência.
		_, err = uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1, ServiceIDs: []uint{1}, Date: testDay, Time: "11:00",
		})
		assert.NoError(t, err)
	})

	t.Run("fora do expediente e sobre o almoço", func(t *testing.T) {
		uc := createUC(bookingRepo(), dayBefore)

		for _, hm := range []string{"08:00", "17:45", "12:30", "11:45"} {
			_, err := uc.Execute(context.Background(), CreateAppointmentInput{
				BarberID: 1, ServiceIDs: []uint{1}, Date: testDay, Time: hm,
			})

			var rej domain.RejectionError
			require.ErrorAs(t, err, &rej, "horário %s", hm)
			assert.Equal(t, domain.ReasonOutsideShift, rej.Reason, "horário %s", hm)
		}
	})

	t.Run("conflito com agendamento existente", func(t *testing.T) {
		repo := bookingRepo()
		repo.addAppointment(1, dayAt(t, "10:00"), dayAt(t, "11:00"), domain.StatusConfirmed)
		uc := createUC(repo, dayBefore)

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1, ServiceIDs: []uint{1}, Date: testDay, Time: "10:30",
		})

		var rej domain.RejectionError
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, domain.ReasonOverlapsExisting, rej.Reason)

		// Encostar no fim do existente é permitido.
		_, err = uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1, ServiceIDs: []uint{1}, Date: testDay, Time: "11:00",
		})
		assert.NoError(t, err)
	})

	t.Run("conflito com walk-in", func(t *testing.T) {
		repo := bookingRepo()
		repo.addWalkIn(10, dayAt(t, "10:00"), 45, 1)
		uc := createUC(repo, dayBefore)

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1, ServiceIDs: []uint{1}, Date: testDay, Time: "10:30",
		})

		var rej domain.RejectionError
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, domain.ReasonOverlapsWalkIn, rej.Reason)
	})

	t.Run("corrida entre validação e gravação", func(t *testing.T) {
		repo := bookingRepo()
		// Outra requisição grava o mesmo horário entre a validação
		// fora da transação e a releitura dentro dela.
		repo.onTransaction = func(f *fakeRepo) {
			f.addAppointment(1, dayAt(t, "10:00"), dayAt(t, "10:30"), domain.StatusRequested)
		}
		uc := createUC(repo, dayBefore)

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			BarberID: 1, ServiceIDs: []uint{1}, Date: testDay, Time: "10:00",
		})

		var rej domain.RejectionError
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, domain.ReasonOverlapsExisting, rej.Reason)
	})
}
