package importer

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/aryawidjaya/gasstation-app/models"
)

// CustomerResolver finds or creates the customer a record belongs to,
// keyed on phone number. Existing rows are never overwritten even when the
// incoming record carries a different name or email.
type CustomerResolver struct {
	DB *gorm.DB
}

func NewCustomerResolver(db *gorm.DB) *CustomerResolver {
	return &CustomerResolver{DB: db}
}

// Resolve returns the id of the customer matching rec's phone number,
// creating one when no match exists. The created flag reports which path
// was taken. Lookups take the lowest id on the off chance duplicates ever
// exist; the unique index on phone_number is there to keep that from
// happening.
func (cr *CustomerResolver) Resolve(rec OrderRecord) (uint, bool, error) {
	var customer models.Customer
	err := cr.DB.Where("phone_number = ?", rec.PhoneNumber).First(&customer).Error
	if err == nil {
		return customer.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, persistErr(err)
	}

	customer = models.Customer{
		FullName:      rec.FullName,
		PhoneNumber:   rec.PhoneNumber,
		Email:         rec.Email,
		VehicleNumber: rec.VehicleNumber,
		CreatedAt:     time.Now(),
	}
	if err := cr.DB.Create(&customer).Error; err != nil {
		return 0, false, persistErr(err)
	}
	return customer.ID, true, nil
}
