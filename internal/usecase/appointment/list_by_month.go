package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-pos/internal/dto"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

// ListAppointmentsByMonth devolve a agenda de um barbeiro num mês
// inteiro, para a visão de calendário do painel.
type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(repo domain.Repository) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{repo: repo}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	barberID uint,
	monthStr string, // YYYY-MM
) ([]dto.AppointmentListDTO, error) {

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(shop.Timezone)

	first, err := time.ParseInLocation("2006-01", monthStr, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_month")
	}
	next := first.AddDate(0, 1, 0)

	aps, err := uc.repo.ListAppointmentsForPeriod(ctx, barberID, first, next)
	if err != nil {
		return nil, err
	}

	return toListDTO(aps), nil
}
