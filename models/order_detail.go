package models

import "github.com/shopspring/decimal"

// OrderDetail belongs to the legacy sample-record path; the batch importer
// never writes order lines.
type OrderDetail struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	Order     Order           `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Product   Product         `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	SubTotal  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"sub_total"`
}
