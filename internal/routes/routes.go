package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	"github.com/BruksfildServices01/barber-pos/internal/cache"
	"github.com/BruksfildServices01/barber-pos/internal/config"
	"github.com/BruksfildServices01/barber-pos/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-pos/internal/infra/repository"
	"github.com/BruksfildServices01/barber-pos/internal/media"
	"github.com/BruksfildServices01/barber-pos/internal/middleware"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/payments"
	ucAppointment "github.com/BruksfildServices01/barber-pos/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	availabilityCache := cache.NewAvailabilityCache(cfg.RedisAddr, cfg.RedisPassword, log)

	storage := media.NewStorage(cfg)

	linkGen, err := payments.NewLinkGenerator(cfg.MercadoPagoToken)
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago desabilitado")
	}

	// ======================================================
	// USE CASES — AGENDA
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		schedulingRepo,
		auditDispatcher,
		availabilityCache,
		log,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		schedulingRepo,
		auditDispatcher,
		availabilityCache,
		log,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		schedulingRepo,
		auditDispatcher,
		log,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		schedulingRepo,
		auditDispatcher,
		log,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		schedulingRepo,
		auditDispatcher,
		availabilityCache,
		log,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(schedulingRepo)
	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(schedulingRepo)

	getAvailabilityUC := ucAppointment.NewGetAvailability(
		schedulingRepo,
		availabilityCache,
		log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	shopHandler := handlers.NewShopHandler(db, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(db, auditDispatcher, storage)
	scheduleHandler := handlers.NewScheduleHandler(db, auditDispatcher, availabilityCache)
	categoryHandler := handlers.NewCategoryHandler(db)
	productHandler := handlers.NewProductHandler(db, auditDispatcher, storage)
	supplyHandler := handlers.NewSupplyHandler(db, auditDispatcher)
	orderHandler := handlers.NewOrderHandler(db, auditDispatcher, availabilityCache, linkGen)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		rescheduleAppointmentUC,
		confirmAppointmentUC,
		completeAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, getAvailabilityUC, createAppointmentUC)

	// ======================================================
	// ROTAS PÚBLICAS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	public := r.Group("/public")
	{
		public.GET("/barbers", publicHandler.ListBarbers)
		public.GET("/services", publicHandler.ListServices)
		public.GET("/barbers/:id/availability", publicHandler.Availability)
		public.POST("/bookings", publicHandler.CreateBooking)
		public.GET("/bookings/:code", publicHandler.BookingStatus)
	}

	// ======================================================
	// ROTAS AUTENTICADAS
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/me", meHandler.Get)

		api.GET("/shop", shopHandler.Get)
		api.PUT("/shop", middleware.RequireRole(models.RoleOwner), shopHandler.Update)

		api.GET("/barbers", barberHandler.List)
		api.POST("/barbers", middleware.RequireRole(models.RoleOwner), barberHandler.Create)
		api.PUT("/barbers/:id", middleware.RequireRole(models.RoleOwner), barberHandler.Update)
		api.POST("/barbers/:id/photo", middleware.RequireRole(models.RoleOwner), barberHandler.UploadPhoto)

		api.GET("/barbers/:id/schedule", scheduleHandler.List)
		api.PUT("/barbers/:id/schedule", middleware.RequireRole(models.RoleOwner), scheduleHandler.Replace)

		api.GET("/categories", categoryHandler.List)
		api.POST("/categories", middleware.RequireRole(models.RoleOwner), categoryHandler.Create)
		api.PUT("/categories/:id", middleware.RequireRole(models.RoleOwner), categoryHandler.Update)

		api.GET("/products", productHandler.List)
		api.POST("/products", middleware.RequireRole(models.RoleOwner), productHandler.Create)
		api.PUT("/products/:id", middleware.RequireRole(models.RoleOwner), productHandler.Update)
		api.POST("/products/:id/image", middleware.RequireRole(models.RoleOwner), productHandler.UploadImage)

		api.GET("/supplies", middleware.RequireRole(models.RoleOwner, models.RoleCashier), supplyHandler.List)
		api.POST("/supplies", middleware.RequireRole(models.RoleOwner, models.RoleCashier), supplyHandler.Create)

		api.POST("/orders", orderHandler.Create)
		api.GET("/orders", orderHandler.ListByDate)
		api.POST("/orders/:id/payment-link", orderHandler.PaymentLink)
		api.POST("/orders/:id/collect", middleware.RequireRole(models.RoleOwner, models.RoleCashier), orderHandler.Collect)
		api.POST("/orders/:id/cancel", orderHandler.Cancel)

		api.POST("/appointments", appointmentHandler.Create)
		api.PUT("/appointments/:id/reschedule", appointmentHandler.Reschedule)
		api.POST("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.POST("/appointments/:id/complete", appointmentHandler.Complete)
		api.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.GET("/barbers/:id/appointments", appointmentHandler.ListByDate)
		api.GET("/barbers/:id/appointments/month", appointmentHandler.ListByMonth)

		api.GET("/audit-logs", middleware.RequireRole(models.RoleOwner), auditLogsHandler.List)
	}
}
