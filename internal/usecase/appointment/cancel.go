package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	"github.com/BruksfildServices01/barber-pos/internal/cache"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

// CancelAppointment cancela um agendamento REQUESTED ou CONFIRMED.
// Cancelar devolve o intervalo para a agenda, então o cache do dia é
// invalidado.
type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
	log   zerolog.Logger

	NowIn func(tz string) time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	availability *cache.AvailabilityCache,
	log zerolog.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditDisp,
		cache: availability,
		log:   log,
		NowIn: timezone.NowIn,
	}
}

func (uc *CancelAppointment) Execute(ctx context.Context, id, actorID uint) (*models.Appointment, error) {
	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Cancel(ap, uc.NowIn(shop.Timezone)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_canceled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, ap.BarberID, ap.Date.Format("2006-01-02"))
	}

	return ap, nil
}
