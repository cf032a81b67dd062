package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/scheduling"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Shop
// --------------------------------------------------

func (r *SchedulingGormRepository) GetShop(ctx context.Context) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.WithContext(ctx).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *SchedulingGormRepository) GetBarber(
	ctx context.Context,
	barberID uint,
) (*models.BarberProfile, error) {

	var barber models.BarberProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ? AND active = true", barberID).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *SchedulingGormRepository) GetWorkSchedule(
	ctx context.Context,
	barberID uint,
	weekday domain.Weekday,
) (*models.WorkSchedule, error) {

	var ws models.WorkSchedule
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, int(weekday)).
		First(&ws).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Não trabalha nesse dia: resultado legítimo, não erro.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

// --------------------------------------------------
// Serviços
// --------------------------------------------------

func (r *SchedulingGormRepository) GetServices(
	ctx context.Context,
	ids []uint,
) ([]models.Product, error) {

	var services []models.Product
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND is_service = true AND active = true", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Agenda ocupada
// --------------------------------------------------

func (r *SchedulingGormRepository) ListActiveAppointments(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			barberID, domain.ActiveStatuses(), dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *SchedulingGormRepository) ListPendingOrders(
	ctx context.Context,
	userID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where(
			"created_by_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
			userID, models.OrderStatusPending, dayStart, dayEnd,
		).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *SchedulingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *SchedulingGormRepository) GetAppointmentByReference(
	ctx context.Context,
	code string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("reference_code = ?", code).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *SchedulingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *SchedulingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID, start, end,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Transação
// --------------------------------------------------

// InTransaction reexecuta as consultas de conflito com lock de linha
// dentro da mesma transação da gravação, serializando criações
// concorrentes para o mesmo barbeiro/dia.
func (r *SchedulingGormRepository) InTransaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&lockedRepository{SchedulingGormRepository{db: tx}})
	})
}

// lockedRepository é a visão transacional: as leituras de agenda
// ocupada levam SELECT ... FOR UPDATE.
type lockedRepository struct {
	SchedulingGormRepository
}

func (r *lockedRepository) ListActiveAppointments(
	ctx context.Context,
	barberID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			barberID, domain.ActiveStatuses(), dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time checks
var (
	_ domain.Repository = (*SchedulingGormRepository)(nil)
	_ domain.Repository = (*lockedRepository)(nil)
)
