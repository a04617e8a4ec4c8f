package models

import "time"

// Employee doubles as the API login principal; Email and Password only
// matter for employees that actually sign in.
type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"type:varchar(100);not null" json:"full_name"`
	Role      string    `gorm:"type:varchar(30);not null" json:"role"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	Password  string    `gorm:"type:varchar(255)" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
