package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/skipit-studio/skipit-api/internal/config"
	"github.com/skipit-studio/skipit-api/internal/logger"
	"github.com/skipit-studio/skipit-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.L().Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.L().Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		logger.L().Fatal("failed to migrate", zap.Error(err))
	}

	return db
}

// Migrate runs the schema migration; split out so tests can run it against
// their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Schedule{},
		&models.ScheduleDay{},
		&models.Appointment{},
		&models.CascadeOffer{},
		&models.AuditLog{},
	)
}
