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

// RescheduleAppointment move um agendamento ativo para outro
// dia/horário. A validação roda inteira de novo, só que ignorando o
// próprio agendamento na checagem de conflito.
type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
	log   zerolog.Logger

	NowIn func(tz string) time.Time
}

func NewRescheduleAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	availability *cache.AvailabilityCache,
	log zerolog.Logger,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: auditDisp,
		cache: availability,
		log:   log,
		NowIn: timezone.NowIn,
	}
}

type RescheduleInput struct {
	AppointmentID uint
	ActorID       uint
	Date          string // YYYY-MM-DD
	Time          string // HH:mm
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(shop.Timezone)

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	status := domain.Status(ap.Status)
	if status != domain.StatusRequested && status != domain.StatusConfirmed {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	barber, err := uc.repo.GetBarber(ctx, ap.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// Duração preservada do agendamento original.
	slot := domain.Interval{Start: start, End: start.Add(ap.EndTime.Sub(ap.StartTime))}
	now := uc.NowIn(shop.Timezone)

	day, err := loadDay(ctx, uc.repo, uc.log, barber, date, ap.ID)
	if err != nil {
		return nil, err
	}

	if err := domain.Validate(domain.BookingCandidate{
		Schedule: day.schedule,
		Slot:     slot,
		Busy:     day.busy,
		Now:      now,
	}); err != nil {
		return nil, err
	}

	oldDate := ap.Date.Format("2006-01-02")

	err = uc.repo.InTransaction(ctx, func(txRepo domain.Repository) error {
		txDay, err := loadDay(ctx, txRepo, uc.log, barber, date, ap.ID)
		if err != nil {
			return err
		}

		if b, conflict := domain.HasConflict(slot, txDay.busy); conflict {
			if b.Kind == domain.BusyWalkIn {
				return domain.RejectionError{Reason: domain.ReasonOverlapsWalkIn}
			}
			return domain.RejectionError{Reason: domain.ReasonOverlapsExisting}
		}

		ap.Date = timezone.StartOfDay(date)
		ap.StartTime = slot.Start
		ap.EndTime = slot.End

		return txRepo.UpdateAppointment(ctx, ap)
	})
	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, domain.RejectionError{Reason: domain.ReasonOverlapsExisting}
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, barber.ID, oldDate)
		uc.cache.Invalidate(ctx, barber.ID, in.Date)
	}

	return ap, nil
}
