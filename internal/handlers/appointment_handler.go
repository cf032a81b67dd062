package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/httpresp"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler expõe a agenda para o painel de staff. A regra
// de negócio mora nos use cases; aqui só entra parse e resposta.
type AppointmentHandler struct {
	create      *appointment.CreateAppointment
	reschedule  *appointment.RescheduleAppointment
	confirm     *appointment.ConfirmAppointment
	complete    *appointment.CompleteAppointment
	cancel      *appointment.CancelAppointment
	listByDate  *appointment.ListAppointmentsByDate
	listByMonth *appointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	create *appointment.CreateAppointment,
	reschedule *appointment.RescheduleAppointment,
	confirm *appointment.ConfirmAppointment,
	complete *appointment.CompleteAppointment,
	cancel *appointment.CancelAppointment,
	listByDate *appointment.ListAppointmentsByDate,
	listByMonth *appointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:      create,
		reschedule:  reschedule,
		confirm:     confirm,
		complete:    complete,
		cancel:      cancel,
		listByDate:  listByDate,
		listByMonth: listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID    uint   `json:"barber_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceIDs  []uint `json:"service_ids" binding:"required,min=1"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		BarberID:    req.BarberID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		ServiceIDs:  req.ServiceIDs,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), appointment.RescheduleInput{
		AppointmentID: id,
		ActorID:       currentUserID(c),
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	transition(c, h.confirm.Execute)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	transition(c, h.complete.Execute)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	transition(c, h.cancel.Execute)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barberID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), barberID, c.Query("date"))
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	barberID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	out, err := h.listByMonth.Execute(c.Request.Context(), barberID, c.Query("month"))
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// HELPERS
// ======================================================

// transition cobre confirmar/concluir/cancelar, que só variam no use
// case chamado.
func transition(
	c *gin.Context,
	exec func(ctx context.Context, id, actorID uint) (*models.Appointment, error),
) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	ap, err := exec(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
