package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) Get(c *gin.Context) {
	userID := currentUserID(c)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	payload := gin.H{"user": userPayload(&user)}

	// Barbeiros ganham o próprio perfil público na resposta.
	var profile models.BarberProfile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err == nil {
		payload["barber_profile"] = profile
	}

	c.JSON(http.StatusOK, payload)
}
