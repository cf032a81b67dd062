package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-pos/internal/config"
	"github.com/BruksfildServices01/barber-pos/internal/models"
)

func NewDB(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Shop{},
		&models.User{},
		&models.BarberProfile{},
		&models.Category{},
		&models.Product{},
		&models.WorkSchedule{},
		&models.Appointment{},
		&models.Order{},
		&models.OrderItem{},
		&models.SupplyEntry{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	ensureShop(db, cfg, log)

	return db
}

// ensureShop garante o registro único de configuração da barbearia.
func ensureShop(db *gorm.DB, cfg *config.Config, log zerolog.Logger) {
	var count int64
	if err := db.Model(&models.Shop{}).Count(&count).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to check shop row")
	}
	if count > 0 {
		db.Model(&models.Shop{}).
			Where("timezone IS NULL OR timezone = ''").
			Update("timezone", cfg.Timezone)
		return
	}

	shop := models.Shop{
		Name:     "Barbearia",
		Timezone: cfg.Timezone,
	}
	if err := db.Create(&shop).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed shop row")
	}
}
