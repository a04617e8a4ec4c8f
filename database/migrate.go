package database

import (
	"gorm.io/gorm"

	"github.com/aryawidjaya/gasstation-app/models"
)

// Migrate creates or updates every table the application touches. Both
// entrypoints (HTTP server and interactive importer) call this on startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Employee{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderDetail{},
		&models.ImportLog{},
	)
}
