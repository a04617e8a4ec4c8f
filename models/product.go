package models

import "github.com/shopspring/decimal"

type Product struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	ProductName  string          `gorm:"type:varchar(100);not null" json:"product_name"`
	ProductType  string          `gorm:"type:varchar(50)" json:"product_type"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_unit"`
}
