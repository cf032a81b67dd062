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

// ProductHandler cobre o catálogo inteiro: produtos físicos e
// serviços (IsService + duração).
type ProductHandler struct {
	db      *gorm.DB
	audit   *audit.Dispatcher
	storage *media.Storage
}

func NewProductHandler(db *gorm.DB, auditDisp *audit.Dispatcher, storage *media.Storage) *ProductHandler {
	return &ProductHandler{db: db, audit: auditDisp, storage: storage}
}

type ProductRequest struct {
	CategoryID  uint    `json:"category_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	IsService   bool    `json:"is_service"`
	DurationMin int     `json:"duration_min"`
	Active      *bool   `json:"active"`
}

func (h *ProductHandler) List(c *gin.Context) {
	q := h.db.Preload("Category").Order("name")

	// ?type=service | ?type=product filtra o catálogo.
	switch c.Query("type") {
	case "service":
		q = q.Where("is_service = ?", true)
	case "product":
		q = q.Where("is_service = ?", false)
	}

	if c.Query("active") == "true" {
		q = q.Where("active = ?", true)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "Erro ao listar produtos.")
		return
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.IsService && req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Serviço precisa de duração em minutos.")
		return
	}

	var category models.Category
	if err := h.db.First(&category, req.CategoryID).Error; err != nil {
		httperr.BadRequest(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	product := models.Product{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsService:   req.IsService,
		DurationMin: req.DurationMin,
		Active:      true,
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.BadRequest(c, "product_already_exists", "Produto já existe.")
		return
	}

	actorID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "product_created",
		Entity:   "product",
		EntityID: &product.ID,
	})

	httpresp.Created(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.IsService && req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Serviço precisa de duração em minutos.")
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	product.CategoryID = req.CategoryID
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.IsService = req.IsService
	product.DurationMin = req.DurationMin
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Erro ao atualizar produto.")
		return
	}

	actorID := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "product_updated",
		Entity:   "product",
		EntityID: &product.ID,
	})

	httpresp.OK(c, product)
}

func (h *ProductHandler) UploadImage(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	file, err := c.FormFile("image")
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

	url, err := h.storage.Upload(c.Request.Context(), "products", src)
	if err != nil {
		writeUseCaseError(c, err)
		return
	}

	product.ImageURL = url
	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Erro ao atualizar produto.")
		return
	}

	httpresp.OK(c, product)
}
