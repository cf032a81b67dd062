package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/httpresp"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

// SupplyHandler registra entrada de insumos. A entrada e o incremento
// de estoque acontecem na mesma transação.
type SupplyHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSupplyHandler(db *gorm.DB, auditDisp *audit.Dispatcher) *SupplyHandler {
	return &SupplyHandler{db: db, audit: auditDisp}
}

type SupplyEntryRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitCost  float64 `json:"unit_cost"`
	Notes     string  `json:"notes"`
}

func (h *SupplyHandler) List(c *gin.Context) {
	var entries []models.SupplyEntry
	if err := h.db.
		Preload("Product").
		Preload("CreatedBy").
		Order("created_at DESC").
		Limit(100).
		Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_supplies", "Erro ao listar entradas.")
		return
	}

	httpresp.List(c, entries)
}

func (h *SupplyHandler) Create(c *gin.Context) {
	var req SupplyEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	actorID := currentUserID(c)

	entry := models.SupplyEntry{
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		UnitCost:    req.UnitCost,
		Notes:       req.Notes,
		CreatedByID: actorID,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, req.ProductID).Error; err != nil {
			return httperr.ErrBusiness("product_not_found")
		}

		if product.IsService {
			return httperr.ErrBusiness("product_is_service")
		}

		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		product.Stock += req.Quantity
		return tx.Save(&product).Error
	})
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "supply_entry_created",
		Entity:   "supply_entry",
		EntityID: &entry.ID,
		Metadata: map[string]any{"product_id": req.ProductID, "quantity": req.Quantity},
	})

	httpresp.Created(c, entry)
}
