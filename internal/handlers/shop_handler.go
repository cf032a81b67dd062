package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/httpresp"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

// ShopHandler expõe as configurações da barbearia (registro único).
type ShopHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewShopHandler(db *gorm.DB, auditDisp *audit.Dispatcher) *ShopHandler {
	return &ShopHandler{db: db, audit: auditDisp}
}

type UpdateShopRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Timezone string `json:"timezone"`
}

func (h *ShopHandler) Get(c *gin.Context) {
	var shop models.Shop
	if err := h.db.First(&shop).Error; err != nil {
		httperr.Internal(c, "shop_not_found", "Configurações não encontradas.")
		return
	}

	httpresp.OK(c, shop)
}

func (h *ShopHandler) Update(c *gin.Context) {
	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Timezone != "" && !timezone.IsValid(req.Timezone) {
		httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop).Error; err != nil {
		httperr.Internal(c, "shop_not_found", "Configurações não encontradas.")
		return
	}

	shop.Name = req.Name
	shop.Phone = req.Phone
	shop.Address = req.Address
	if req.Timezone != "" {
		shop.Timezone = req.Timezone
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_shop", "Erro ao salvar configurações.")
		return
	}

	actorID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID: &actorID,
		Action: "shop_updated",
		Entity: "shop",
	})

	httpresp.OK(c, shop)
}
