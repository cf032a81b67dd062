package scheduling

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-pos/internal/models"
)

// Repository é tudo que os use cases de agenda precisam da camada de
// persistência. O core em si nunca grava nada; leitura de estado e
// escrita do agendamento final ficam atrás desta interface.
type Repository interface {
	// -------- Shop --------
	GetShop(ctx context.Context) (*models.Shop, error)

	// -------- Barber --------
	GetBarber(ctx context.Context, barberID uint) (*models.BarberProfile, error)

	// Zero-ou-um registro por (barbeiro, dia da semana); nil sem erro
	// quando o barbeiro não trabalha nesse dia.
	GetWorkSchedule(ctx context.Context, barberID uint, weekday Weekday) (*models.WorkSchedule, error)

	// -------- Serviços --------
	GetServices(ctx context.Context, ids []uint) ([]models.Product, error)

	// -------- Agenda ocupada --------

	// Agendamentos ativos (requested/confirmed/completed) do barbeiro
	// cujo início cai em [dayStart, dayEnd).
	ListActiveAppointments(ctx context.Context, barberID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error)

	// Ordens pendentes criadas pelo usuário do barbeiro em
	// [dayStart, dayEnd), com itens e produtos carregados.
	ListPendingOrders(ctx context.Context, userID uint, dayStart, dayEnd time.Time) ([]models.Order, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	GetAppointmentByReference(ctx context.Context, code string) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	ListAppointmentsForPeriod(ctx context.Context, barberID uint, start, end time.Time) ([]models.Appointment, error)

	// InTransaction executa fn com um Repository amarrado à transação;
	// a releitura de conflitos dentro dela usa lock de linha, fechando
	// a janela de corrida entre checagem e gravação.
	InTransaction(ctx context.Context, fn func(Repository) error) error
}
