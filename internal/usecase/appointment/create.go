package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	"github.com/BruksfildServices01/barber-pos/internal/cache"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceIDs []uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.AvailabilityCache
	log   zerolog.Logger

	// Relógio injetável; em produção é o agora no fuso da barbearia.
	NowIn func(tz string) time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	availability *cache.AvailabilityCache,
	log zerolog.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: auditDisp,
		cache: availability,
		log:   log,
		NowIn: timezone.NowIn,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(shop.Timezone)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	services, total, duration, err := uc.resolveServices(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// Fim derivado da soma das durações; passa da meia-noite quando a
	// soma estoura o dia.
	end := start.Add(duration)
	slot := domain.Interval{Start: start, End: end}

	now := uc.NowIn(shop.Timezone)

	day, err := loadDay(ctx, uc.repo, uc.log, barber, date, 0)
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

	ap := &models.Appointment{
		ReferenceCode: uuid.NewString(),
		BarberID:      barber.ID,
		ClientName:    in.ClientName,
		ClientPhone:   in.ClientPhone,
		ClientEmail:   in.ClientEmail,
		Date:          timezone.StartOfDay(date),
		StartTime:     start,
		EndTime:       end,
		Services:      services,
		TotalAmount:   total,
		Status:        string(domain.InitialStatus()),
		Notes:         in.Notes,
	}

	// Revalida e grava sob a mesma transação com lock de linha: duas
	// requisições simultâneas para o mesmo horário não passam juntas.
	err = uc.repo.InTransaction(ctx, func(txRepo domain.Repository) error {
		txDay, err := loadDay(ctx, txRepo, uc.log, barber, date, 0)
		if err != nil {
			return err
		}

		if b, conflict := domain.HasConflict(slot, txDay.busy); conflict {
			if b.Kind == domain.BusyWalkIn {
				return domain.RejectionError{Reason: domain.ReasonOverlapsWalkIn}
			}
			return domain.RejectionError{Reason: domain.ReasonOverlapsExisting}
		}

		return txRepo.CreateAppointment(ctx, ap)
	})
	if err != nil {
		// Corrida que escapou do lock e bateu em constraint do banco.
		if httperr.IsExclusionConflict(err) {
			return nil, domain.RejectionError{Reason: domain.ReasonOverlapsExisting}
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   nil,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"barber_id": barber.ID, "start": start},
	})

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, barber.ID, in.Date)
	}

	return ap, nil
}

// resolveServices carrega e valida os serviços pedidos; a soma das
// durações tem que ser positiva (agendamento só de produto não existe).
func (uc *CreateAppointment) resolveServices(
	ctx context.Context,
	ids []uint,
) ([]models.Product, float64, time.Duration, error) {

	if len(ids) == 0 {
		return nil, 0, 0, httperr.ErrBusiness("services_required")
	}

	services, err := uc.repo.GetServices(ctx, ids)
	if err != nil {
		return nil, 0, 0, err
	}
	if len(services) != len(ids) {
		return nil, 0, 0, httperr.ErrBusiness("service_not_found")
	}

	var total float64
	var minutes int
	for _, s := range services {
		total += s.Price
		minutes += s.DurationMin
	}
	if minutes <= 0 {
		return nil, 0, 0, httperr.ErrBusiness("services_without_duration")
	}

	return services, total, time.Duration(minutes) * time.Minute, nil
}
