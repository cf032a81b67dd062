package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/httpresp"
	"github.com/BruksfildServices01/barber-pos/internal/media"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

// BarberHandler administra os perfis públicos de barbeiro.
type BarberHandler struct {
	db      *gorm.DB
	audit   *audit.Dispatcher
	storage *media.Storage
}

func NewBarberHandler(db *gorm.DB, auditDisp *audit.Dispatcher, storage *media.Storage) *BarberHandler {
	return &BarberHandler{db: db, audit: auditDisp, storage: storage}
}

type CreateBarberRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Bio    string `json:"bio"`
}

type UpdateBarberRequest struct {
	Bio    string `json:"bio"`
	Active *bool  `json:"active"`
}

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.BarberProfile
	if err := h.db.Preload("User").Order("id").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var user models.User
	if err := h.db.First(&user, req.UserID).Error; err != nil {
		httperr.BadRequest(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	var existing int64
	h.db.Model(&models.BarberProfile{}).Where("user_id = ?", req.UserID).Count(&existing)
	if existing > 0 {
		httperr.BadRequest(c, "barber_already_exists", "Usuário já tem perfil de barbeiro.")
		return
	}

	barber := models.BarberProfile{
		UserID: req.UserID,
		Bio:    req.Bio,
		Active: true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	actorID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "barber_created",
		Entity:   "barber_profile",
		EntityID: &barber.ID,
	})

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var barber models.BarberProfile
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	barber.Bio = req.Bio
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	actorID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "barber_updated",
		Entity:   "barber_profile",
		EntityID: &barber.ID,
	})

	httpresp.OK(c, barber)
}

// UploadPhoto troca a foto do perfil; a imagem vai redimensionada em
// webp para o bucket.
func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var barber models.BarberProfile
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo de imagem obrigatório.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler arquivo.")
		return
	}
	defer src.Close()

	url, err := h.storage.Upload(c.Request.Context(), "barbers", src)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	barber.PhotoURL = url
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	httpresp.OK(c, barber)
}
