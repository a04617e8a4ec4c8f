package importer

import (
	"gorm.io/gorm"

	"github.com/aryawidjaya/gasstation-app/models"
)

// PageSize is the fixed customer listing window. It matches BatchSize on
// purpose: batch 3 of the source sheet and batch 3 of the customers table
// are different windows over different collections, but the arithmetic is
// shared.
const PageSize = 100

// CustomerViewer lists persisted customers a batch at a time, ordered by
// id ascending. Read-only.
type CustomerViewer struct {
	DB *gorm.DB
}

func NewCustomerViewer(db *gorm.DB) *CustomerViewer {
	return &CustomerViewer{DB: db}
}

// BatchCount reports ceil(totalCustomers/PageSize). Zero customers means
// zero batches, which makes every batch number invalid.
func (cv *CustomerViewer) BatchCount() (int, error) {
	var total int64
	if err := cv.DB.Model(&models.Customer{}).Count(&total).Error; err != nil {
		return 0, persistErr(err)
	}
	return int((total + PageSize - 1) / PageSize), nil
}

// ListBatch returns the customers in 1-based batch n.
func (cv *CustomerViewer) ListBatch(n int) ([]models.Customer, error) {
	batches, err := cv.BatchCount()
	if err != nil {
		return nil, err
	}
	if n < 1 || n > batches {
		return nil, ErrInvalidBatchNumber
	}

	var customers []models.Customer
	err = cv.DB.Order("id ASC").Offset((n - 1) * PageSize).Limit(PageSize).Find(&customers).Error
	if err != nil {
		return nil, persistErr(err)
	}
	return customers, nil
}
