package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gestioncursos/config"
	"gestioncursos/models"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return db, nil
}

// EnsureSchema migrates the three tables and seeds the state lookup. Safe to
// run on every start; migration is additive and the seed only fires on an
// empty states table. Errors are logged and the process keeps running.
func EnsureSchema(db *gorm.DB, logger *log.Logger) {
	if err := db.AutoMigrate(&models.State{}, &models.Course{}, &models.Cycle{}); err != nil {
		logger.Printf("schema migration failed: %v", err)
		return
	}
	seedStates(db, logger)
}

func seedStates(db *gorm.DB, logger *log.Logger) {
	var count int64
	if err := db.Model(&models.State{}).Count(&count).Error; err != nil {
		logger.Printf("could not count states: %v", err)
		return
	}
	if count > 0 {
		return
	}

	states := []models.State{
		{ID: models.StateActive, Name: "Active", Description: "Available and running"},
		{ID: models.StateInactive, Name: "Inactive", Description: "Temporarily unavailable"},
		{ID: models.StateCancelled, Name: "Cancelled", Description: "Soft-deleted"},
		{ID: models.StatePending, Name: "Pending", Description: "Awaiting publication"},
		{ID: models.StateFinished, Name: "Finished", Description: "Completed its run"},
	}
	if err := db.Create(&states).Error; err != nil {
		logger.Printf("could not seed states: %v", err)
	}
}
