package appointment

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

// fakeRepo implementa domain.Repository em memória para os testes de
// use case. InTransaction só executa fn com o próprio repo (não há
// transação de verdade aqui); onTransaction permite simular uma
// escrita concorrente entre a validação e a gravação.
type fakeRepo struct {
	shop      *models.Shop
	barbers   map[uint]*models.BarberProfile
	schedules map[uint]map[domain.Weekday]*models.WorkSchedule
	services  map[uint]models.Product

	appointments []*models.Appointment
	orders       []models.Order

	nextID        uint
	transactions  int
	onTransaction func(*fakeRepo)
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shop:      &models.Shop{ID: 1, Name: "Barbearia Central", Timezone: "UTC"},
		barbers:   map[uint]*models.BarberProfile{},
		schedules: map[uint]map[domain.Weekday]*models.WorkSchedule{},
		services:  map[uint]models.Product{},
		nextID:    1,
	}
}

func (f *fakeRepo) addBarber(id, userID uint) *models.BarberProfile {
	b := &models.BarberProfile{ID: id, UserID: userID, Active: true}
	f.barbers[id] = b
	return b
}

func (f *fakeRepo) addSchedule(barberID uint, wd domain.Weekday, start, end, lunchStart, lunchEnd string) {
	if f.schedules[barberID] == nil {
		f.schedules[barberID] = map[domain.Weekday]*models.WorkSchedule{}
	}
	f.schedules[barberID][wd] = &models.WorkSchedule{
		BarberID:   barberID,
		Weekday:    int(wd),
		StartHour:  start,
		EndHour:    end,
		LunchStart: lunchStart,
		LunchEnd:   lunchEnd,
	}
}

func (f *fakeRepo) addService(id uint, name string, price float64, durationMin int) {
	f.services[id] = models.Product{
		ID: id, Name: name, Price: price,
		IsService: true, DurationMin: durationMin, Active: true,
	}
}

func (f *fakeRepo) addAppointment(barberID uint, start, end time.Time, status domain.Status) *models.Appointment {
	ap := &models.Appointment{
		ID:            f.nextID,
		ReferenceCode: fmt.Sprintf("ref-%d", f.nextID),
		BarberID:      barberID,
		Date:          time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()),
		StartTime:     start,
		EndTime:       end,
		Status:        string(status),
	}
	f.nextID++
	f.appointments = append(f.appointments, ap)
	return ap
}

func (f *fakeRepo) addWalkIn(userID uint, createdAt time.Time, serviceMin, qty int) {
	f.orders = append(f.orders, models.Order{
		ID:          f.nextID,
		Status:      models.OrderStatusPending,
		CreatedByID: userID,
		CreatedAt:   createdAt,
		Items: []models.OrderItem{
			{
				Product:  models.Product{IsService: true, DurationMin: serviceMin},
				Quantity: qty,
			},
		},
	})
	f.nextID++
}

// -------- domain.Repository --------

func (f *fakeRepo) GetShop(context.Context) (*models.Shop, error) {
	return f.shop, nil
}

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.BarberProfile, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, fmt.Errorf("barber %d not found", id)
	}
	return b, nil
}

func (f *fakeRepo) GetWorkSchedule(_ context.Context, barberID uint, wd domain.Weekday) (*models.WorkSchedule, error) {
	return f.schedules[barberID][wd], nil
}

func (f *fakeRepo) GetServices(_ context.Context, ids []uint) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		if s, ok := f.services[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListActiveAppointments(_ context.Context, barberID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID {
			continue
		}
		active := false
		for _, s := range domain.ActiveStatuses() {
			if ap.Status == s {
				active = true
				break
			}
		}
		if !active {
			continue
		}
		if ap.StartTime.Before(dayStart) || !ap.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) ListPendingOrders(_ context.Context, userID uint, dayStart, dayEnd time.Time) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.CreatedByID != userID || o.Status != models.OrderStatusPending {
			continue
		}
		if o.CreatedAt.Before(dayStart) || !o.CreatedAt.Before(dayEnd) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = f.nextID
	f.nextID++
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == id {
			return ap, nil
		}
	}
	return nil, fmt.Errorf("appointment %d not found", id)
}

func (f *fakeRepo) GetAppointmentByReference(_ context.Context, code string) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ReferenceCode == code {
			return ap, nil
		}
	}
	return nil, fmt.Errorf("appointment %q not found", code)
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, cur := range f.appointments {
		if cur.ID == ap.ID {
			f.appointments[i] = ap
			return nil
		}
	}
	return fmt.Errorf("appointment %d not found", ap.ID)
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) InTransaction(_ context.Context, fn func(domain.Repository) error) error {
	f.transactions++
	if f.onTransaction != nil {
		f.onTransaction(f)
	}
	return fn(f)
}
