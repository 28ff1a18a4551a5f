package db

import (
	"log"
	"time"

	"github.com/serenespa/booking-api/internal/config"
	"github.com/serenespa/booking-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Service{},
		&models.Client{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Authoritative double-booking guard. The availability endpoint is
	// advisory only; this index is what actually prevents the race.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS appointments_no_double_booking
        ON appointments (date, time)
        WHERE status <> 'cancelled'
    `)

	seedServices(db)

	return db
}

// seedServices keeps the booking form's catalog available on a fresh
// database without a separate fixture step.
func seedServices(db *gorm.DB) {
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return
	}

	services := []models.Service{
		{Name: "Swedish Massage", DurationMin: 60, Category: "massage"},
		{Name: "Deep Tissue", DurationMin: 60, Category: "massage"},
		{Name: "Sports Massage", DurationMin: 45, Category: "massage"},
		{Name: "Relaxation", DurationMin: 30, Category: "massage"},
		{Name: "Training Session", DurationMin: 60, Category: "training"},
	}

	if err := db.Create(&services).Error; err != nil {
		log.Printf("failed to seed services: %v", err)
	}
}
