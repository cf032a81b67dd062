package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

// CompleteAppointment fecha um agendamento CONFIRMED como COMPLETED.
// O intervalo reservado continua ocupando agenda mesmo depois disso.
type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   zerolog.Logger

	NowIn func(tz string) time.Time
}

func NewCompleteAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	log zerolog.Logger,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: auditDisp,
		log:   log,
		NowIn: timezone.NowIn,
	}
}

func (uc *CompleteAppointment) Execute(ctx context.Context, id, actorID uint) (*models.Appointment, error) {
	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Complete(ap, uc.NowIn(shop.Timezone)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
