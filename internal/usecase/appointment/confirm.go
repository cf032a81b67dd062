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

// ConfirmAppointment marca um agendamento REQUESTED como CONFIRMED.
type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   zerolog.Logger

	NowIn func(tz string) time.Time
}

func NewConfirmAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	log zerolog.Logger,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: auditDisp,
		log:   log,
		NowIn: timezone.NowIn,
	}
}

func (uc *ConfirmAppointment) Execute(ctx context.Context, id, actorID uint) (*models.Appointment, error) {
	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Confirm(ap, uc.NowIn(shop.Timezone)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// Confirmação não mexe na agenda ocupada (REQUESTED já ocupava o
	// intervalo), então o cache de disponibilidade fica como está.

	return ap, nil
}
