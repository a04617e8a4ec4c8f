package importer

import (
	"gorm.io/gorm"

	"github.com/aryawidjaya/gasstation-app/models"
)

// OrderInserter persists one order per record. No existence check, no
// dedup: importing the same sheet twice doubles the orders.
type OrderInserter struct {
	DB *gorm.DB
}

func NewOrderInserter(db *gorm.DB) *OrderInserter {
	return &OrderInserter{DB: db}
}

func (oi *OrderInserter) Insert(customerID uint, rec OrderRecord) error {
	order := models.Order{
		CustomerID:    customerID,
		OrderDateTime: rec.OrderDateTime,
		PaymentMethod: rec.PaymentMethod,
		TotalAmount:   rec.TotalAmount,
		Status:        rec.Status,
	}
	if err := oi.DB.Create(&order).Error; err != nil {
		return persistErr(err)
	}
	return nil
}
