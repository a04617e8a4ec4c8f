package models

import "time"

// ImportLog records one row per import run so partial or failed runs stay
// visible. BatchNumber is nil for full imports.
type ImportLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RunID          string    `gorm:"type:varchar(36);index" json:"run_id"`
	SourceFile     string    `gorm:"type:varchar(255)" json:"source_file"`
	BatchNumber    *int      `json:"batch_number,omitempty"`
	OrdersInserted int       `json:"orders_inserted"`
	NewCustomers   int       `json:"new_customers"`
	Status         string    `gorm:"type:varchar(20)" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

const (
	ImportStatusCompleted = "completed"
	ImportStatusFailed    = "failed"
)
