package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order keeps the date-time of the original purchase, not the moment of
// insertion. The spreadsheet's own order id is discarded on import; the
// store assigns a fresh identity, so re-importing a sheet duplicates orders.
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CustomerID    uint            `gorm:"not null;index" json:"customer_id"`
	Customer      Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	OrderDateTime time.Time       `gorm:"not null" json:"order_date_time"`
	PaymentMethod string          `gorm:"type:varchar(30)" json:"payment_method"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status        string          `gorm:"type:varchar(20)" json:"status"`
}
