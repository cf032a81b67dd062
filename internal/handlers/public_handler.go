package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/httpresp"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler é a fachada sem autenticação usada pela página de
// agendamento do cliente final.
type PublicHandler struct {
	db           *gorm.DB
	availability *appointment.GetAvailability
	create       *appointment.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	availability *appointment.GetAvailability,
	create *appointment.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		create:       create,
	}
}

// ======================================================
// CATÁLOGO PÚBLICO
// ======================================================

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.BarberProfile
	if err := h.db.
		Preload("User").
		Where("active = ?", true).
		Order("id").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	out := make([]gin.H, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, gin.H{
			"id":        b.ID,
			"name":      b.User.Name,
			"bio":       b.Bio,
			"photo_url": b.PhotoURL,
		})
	}

	httpresp.List(c, out)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Product
	if err := h.db.
		Where("is_service = ? AND active = ?", true, true).
		Order("name").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	out := make([]gin.H, 0, len(services))
	for _, s := range services {
		out = append(out, gin.H{
			"id":           s.ID,
			"name":         s.Name,
			"description":  s.Description,
			"price":        s.Price,
			"duration_min": s.DurationMin,
			"image_url":    s.ImageURL,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// DISPONIBILIDADE
// ======================================================

// GET /public/barbers/:id/availability?date=YYYY-MM-DD
func (h *PublicHandler) Availability(c *gin.Context) {
	barberID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), appointment.AvailabilityInput{
		BarberID: barberID,
		Date:     c.Query("date"),
	})
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// BOOKING
// ======================================================

type PublicBookingRequest struct {
	BarberID    uint   `json:"barber_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceIDs  []uint `json:"service_ids" binding:"required,min=1"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicBookingRequest
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

	// O cliente guarda o reference_code para consultar depois.
	c.JSON(http.StatusCreated, gin.H{
		"reference_code": ap.ReferenceCode,
		"date":           ap.Date,
		"start_time":     ap.StartTime,
		"end_time":       ap.EndTime,
		"status":         ap.Status,
		"total_amount":   ap.TotalAmount,
	})
}

// GET /public/bookings/:code
func (h *PublicHandler) BookingStatus(c *gin.Context) {
	code := c.Param("code")

	var ap models.Appointment
	if err := h.db.
		Preload("Services").
		Preload("Barber.User").
		Where("reference_code = ?", code).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
		return
	}

	names := make([]string, 0, len(ap.Services))
	for _, s := range ap.Services {
		names = append(names, s.Name)
	}

	httpresp.OK(c, gin.H{
		"reference_code": ap.ReferenceCode,
		"barber":         ap.Barber.User.Name,
		"date":           ap.Date,
		"start_time":     ap.StartTime,
		"end_time":       ap.EndTime,
		"status":         ap.Status,
		"services":       names,
		"total_amount":   ap.TotalAmount,
	})
}
