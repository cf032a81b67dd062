package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

// dayContext reúne o que toda consulta de agenda precisa: a agenda do
// dia resolvida e os trechos ocupados (agendamentos + walk-ins) do
// barbeiro nessa data, tudo no fuso da barbearia.
type dayContext struct {
	schedule *domain.DaySchedule
	busy     []domain.BusyInterval
	dayStart time.Time
	dayEnd   time.Time
}

// loadDay monta o dayContext. excludeID deixa de fora o agendamento
// em edição; registros com intervalo irreconciliável são logados e
// descartados, nunca derrubam a consulta.
func loadDay(
	ctx context.Context,
	repo domain.Repository,
	log zerolog.Logger,
	barber *models.BarberProfile,
	date time.Time,
	excludeID uint,
) (*dayContext, error) {

	ws, err := repo.GetWorkSchedule(ctx, barber.ID, domain.WeekdayOf(date))
	if err != nil {
		return nil, err
	}

	dayStart := timezone.StartOfDay(date)
	dayEnd := dayStart.Add(24 * time.Hour)

	dc := &dayContext{
		schedule: domain.ResolveDay(ws, date),
		dayStart: dayStart,
		dayEnd:   dayEnd,
	}

	if dc.schedule == nil {
		// Sem expediente: nenhum trecho ocupado interessa.
		return dc, nil
	}

	aps, err := repo.ListActiveAppointments(ctx, barber.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	busy, skipped := domain.AppointmentBusy(aps, excludeID)
	for _, id := range skipped {
		log.Warn().
			Uint("appointment_id", id).
			Msg("agendamento com intervalo inconsistente ignorado na checagem de conflito")
	}

	orders, err := repo.ListPendingOrders(ctx, barber.UserID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	dc.busy = append(busy, domain.WalkInBusy(orders, date.Location())...)

	return dc, nil
}
