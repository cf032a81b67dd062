package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-pos/internal/dto"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

// ListAppointmentsByDate devolve a agenda de um barbeiro num dia,
// incluindo cancelados (a tela do painel mostra tudo).
type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barberID uint,
	dateStr string,
) ([]dto.AppointmentListDTO, error) {

	shop, err := uc.repo.GetShop(ctx)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(shop.Timezone)

	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	dayStart := timezone.StartOfDay(date)
	dayEnd := dayStart.Add(24 * time.Hour)

	aps, err := uc.repo.ListAppointmentsForPeriod(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return toListDTO(aps), nil
}

func toListDTO(aps []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		names := make([]string, 0, len(ap.Services))
		for _, s := range ap.Services {
			names = append(names, s.Name)
		}

		out = append(out, dto.AppointmentListDTO{
			ID:            ap.ID,
			ReferenceCode: ap.ReferenceCode,
			Date:          ap.Date,
			StartTime:     ap.StartTime,
			EndTime:       ap.EndTime,
			Status:        ap.Status,
			ClientName:    ap.ClientName,
			Services:      names,
			TotalAmount:   ap.TotalAmount,
		})
	}
	return out
}
