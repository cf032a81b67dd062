package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	"github.com/BruksfildServices01/barber-pos/internal/cache"
	"github.com/BruksfildServices01/barber-pos/internal/dto"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/httpresp"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/payments"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

// OrderHandler cobre o balcão: venda walk-in, cobrança e cancelamento.
// Ordem pendente com serviço ocupa a agenda do barbeiro que a criou,
// então toda mutação invalida o cache de disponibilidade do dia.
type OrderHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	cache    *cache.AvailabilityCache
	payments *payments.LinkGenerator
}

func NewOrderHandler(
	db *gorm.DB,
	auditDisp *audit.Dispatcher,
	availability *cache.AvailabilityCache,
	linkGen *payments.LinkGenerator,
) *OrderHandler {
	return &OrderHandler{
		db:       db,
		audit:    auditDisp,
		cache:    availability,
		payments: linkGen,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1"`
}

// ======================================================
// CREATE
// ======================================================

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	actorID := currentUserID(c)

	order := models.Order{
		Number:      uuid.NewString(),
		Status:      models.OrderStatusPending,
		CreatedByID: actorID,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var total float64
		items := make([]models.OrderItem, 0, len(req.Items))

		for _, it := range req.Items {
			var product models.Product
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, it.ProductID).Error; err != nil {
				return httperr.ErrBusiness("product_not_found")
			}

			// Estoque só vale para produto físico; serviço não baixa.
			if !product.IsService {
				if product.Stock < it.Quantity {
					return httperr.ErrBusiness("insufficient_stock")
				}
				product.Stock -= it.Quantity
				if err := tx.Save(&product).Error; err != nil {
					return err
				}
			}

			subtotal := product.Price * float64(it.Quantity)
			total += subtotal

			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			})
		}

		order.Items = items
		order.TotalAmount = total

		return tx.Create(&order).Error
	})
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "order_created",
		Entity:   "order",
		EntityID: &order.ID,
		Metadata: map[string]any{"total": order.TotalAmount},
	})

	h.invalidateAvailability(c, order.CreatedByID, order.CreatedAt)

	httpresp.Created(c, order)
}

// ======================================================
// PAYMENT LINK
// ======================================================

func (h *OrderHandler) PaymentLink(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var order models.Order
	if err := h.db.Preload("Items.Product").First(&order, id).Error; err != nil {
		httperr.NotFound(c, "order_not_found", "Ordem não encontrada.")
		return
	}

	if order.Status != models.OrderStatusPending {
		httperr.Conflict(c, "invalid_state", "Ordem já cobrada ou cancelada.")
		return
	}

	if h.payments == nil || !h.payments.Enabled() {
		httperr.BadRequest(c, "payments_disabled", "Cobrança online desabilitada.")
		return
	}

	link, err := h.payments.PaymentLink(c.Request.Context(), &order)
	if err != nil {
		httperr.Internal(c, "failed_to_create_payment", "Erro ao gerar link de pagamento.")
		return
	}

	order.PaymentLink = link
	if err := h.db.Save(&order).Error; err != nil {
		httperr.Internal(c, "failed_to_update_order", "Erro ao salvar ordem.")
		return
	}

	httpresp.OK(c, gin.H{"order_id": order.ID, "payment_link": link})
}

// ======================================================
// COLLECT
// ======================================================

// Collect fecha a ordem como paga; quem cobra pode não ser quem criou.
func (h *OrderHandler) Collect(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var order models.Order
	if err := h.db.First(&order, id).Error; err != nil {
		httperr.NotFound(c, "order_not_found", "Ordem não encontrada.")
		return
	}

	if order.Status != models.OrderStatusPending {
		httperr.Conflict(c, "invalid_state", "Ordem já cobrada ou cancelada.")
		return
	}

	actorID := currentUserID(c)
	now := time.Now()

	order.Status = models.OrderStatusPaid
	order.CollectedByID = &actorID
	order.PaidAt = &now

	if err := h.db.Save(&order).Error; err != nil {
		httperr.Internal(c, "failed_to_update_order", "Erro ao salvar ordem.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "order_collected",
		Entity:   "order",
		EntityID: &order.ID,
	})

	// Paga deixa de ocupar agenda.
	h.invalidateAvailability(c, order.CreatedByID, order.CreatedAt)

	httpresp.OK(c, order)
}

// ======================================================
// CANCEL
// ======================================================

// Cancel devolve o estoque dos produtos físicos na mesma transação.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	actorID := currentUserID(c)
	now := time.Now()

	var order models.Order

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items.Product").
			First(&order, id).Error; err != nil {
			return httperr.ErrBusiness("order_not_found")
		}

		if order.Status != models.OrderStatusPending {
			return httperr.ErrBusiness("invalid_state")
		}

		for _, item := range order.Items {
			if item.Product.IsService {
				continue
			}

			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		order.Status = models.OrderStatusCanceled
		order.CanceledAt = &now

		return tx.Save(&order).Error
	})
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "order_canceled",
		Entity:   "order",
		EntityID: &order.ID,
	})

	h.invalidateAvailability(c, order.CreatedByID, order.CreatedAt)

	httpresp.OK(c, order)
}

// ======================================================
// LIST
// ======================================================

func (h *OrderHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")

	var shop models.Shop
	if err := h.db.First(&shop).Error; err != nil {
		httperr.Internal(c, "shop_not_found", "Configurações não encontradas.")
		return
	}
	loc := timezone.Location(shop.Timezone)

	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	dayStart := timezone.StartOfDay(date)
	dayEnd := dayStart.Add(24 * time.Hour)

	var orders []models.Order
	if err := h.db.
		Preload("Items").
		Preload("CreatedBy").
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Erro ao listar ordens.")
		return
	}

	out := make([]dto.OrderListDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.OrderListDTO{
			ID:          o.ID,
			Number:      o.Number,
			Status:      o.Status,
			CreatedBy:   o.CreatedBy.Name,
			ItemCount:   len(o.Items),
			TotalAmount: o.TotalAmount,
			CreatedAt:   o.CreatedAt,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// HELPERS
// ======================================================

// invalidateAvailability derruba o cache do dia do barbeiro dono da
// ordem, se o usuário tiver perfil de barbeiro.
func (h *OrderHandler) invalidateAvailability(c *gin.Context, userID uint, createdAt time.Time) {
	if h.cache == nil {
		return
	}

	var profile models.BarberProfile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop).Error; err != nil {
		return
	}

	date := createdAt.In(timezone.Location(shop.Timezone)).Format("2006-01-02")
	h.cache.Invalidate(c.Request.Context(), profile.ID, date)
}
