package models

import (
	"time"
)

// Customer is deduplicated by phone number: the importer treats the phone
// as the natural key, so two source rows with the same phone resolve to the
// same row here even when name or email differ. Rows with no phone at all
// are stored under the "UNKNOWN" sentinel and collapse together.
type Customer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FullName      string    `gorm:"type:varchar(100);not null" json:"full_name"`
	PhoneNumber   string    `gorm:"type:varchar(30);uniqueIndex;not null" json:"phone_number"`
	Email         string    `gorm:"type:varchar(100)" json:"email"`
	VehicleNumber string    `gorm:"type:varchar(30)" json:"vehicle_number"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}
