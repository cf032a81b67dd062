package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-pos/internal/cache"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

// GetAvailability lista os horários livres de um barbeiro numa data,
// já formatados para o cliente ("09:00 AM"). É a consulta mais quente
// da API pública, por isso passa pelo cache read-through.
type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	log   zerolog.Logger

	NowIn func(tz string) time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	availability *cache.AvailabilityCache,
	log zerolog.Logger,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: availability,
		log:   log,
		NowIn: timezone.NowIn,
	}
}

type AvailabilityInput struct {
	BarberID uint
	Date     string // YYYY-MM-DD
}

type AvailabilityOutput struct {
	BarberID uint     `json:"barber_id"`
	Date     string   `json:"date"`
	Slots    []string `json:"available_slots"`
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*AvailabilityOutput, error) {

	if uc.cache != nil {
		if slots, ok := uc.cache.Get(ctx, in.BarberID, in.Date); ok {
			return &AvailabilityOutput{BarberID: in.BarberID, Date: in.Date, Slots: slots}, nil
		}
	}

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(shop.Timezone)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	day, err := loadDay(ctx, uc.repo, uc.log, barber, date, 0)
	if err != nil {
		return nil, err
	}

	out := &AvailabilityOutput{BarberID: in.BarberID, Date: in.Date, Slots: []string{}}

	if day.schedule == nil {
		// Folga: lista vazia, nunca erro.
		return out, nil
	}

	now := uc.NowIn(shop.Timezone)
	window := domain.BookingWindow(day.schedule, now, domain.EnumerationLeadTime, domain.EnumerationCutoff)

	slots := domain.EnumerateSlots(day.schedule, window, domain.SlotStep, day.busy, now)
	out.Slots = domain.FormatSlots(slots)

	if uc.cache != nil {
		uc.cache.Set(ctx, in.BarberID, in.Date, out.Slots)
	}

	return out, nil
}
