package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/aryawidjaya/gasstation-app/models"
	"github.com/aryawidjaya/gasstation-app/utils"
)

// SeedService inserts the original manual sample records: one customer,
// one employee, one product, then an order with a detail line priced by
// product lookup. It predates the batch importer and keeps its quirks —
// the customer here is keyed by email, not phone.
type SeedService struct {
	DB *gorm.DB
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{DB: db}
}

type SeedSummary struct {
	CustomerID uint `json:"customer_id"`
	EmployeeID uint `json:"employee_id"`
	ProductID  uint `json:"product_id"`
	OrderID    uint `json:"order_id"`
}

func (s *SeedService) InsertSampleRecords() (SeedSummary, error) {
	var sum SeedSummary
	var err error

	if sum.CustomerID, err = s.insertCustomer("John Doe", "john@example.com"); err != nil {
		return sum, err
	}
	if sum.EmployeeID, err = s.insertEmployee("Jane Smith", "Cashier"); err != nil {
		return sum, err
	}
	price := decimal.NewFromFloat(3.49)
	if sum.ProductID, err = s.insertProduct("Diesel", "Fuel", price); err != nil {
		return sum, err
	}

	quantity := 10
	total := price.Mul(decimal.NewFromInt(int64(quantity)))
	if sum.OrderID, err = s.insertOrder(sum.CustomerID, time.Now(), "Cash", total, "Completed"); err != nil {
		return sum, err
	}
	if err = s.insertOrderDetail(sum.OrderID, sum.ProductID, quantity); err != nil {
		return sum, err
	}

	utils.InfoLogger.Printf("Sample records inserted (order %d for customer %d)", sum.OrderID, sum.CustomerID)
	return sum, nil
}

func (s *SeedService) insertCustomer(fullName, email string) (uint, error) {
	var existing models.Customer
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	// The sample customer gets its own phone so it can never collide with
	// the importer's UNKNOWN sentinel on the phone unique index.
	customer := models.Customer{
		FullName:    fullName,
		PhoneNumber: "555-0100",
		Email:       email,
		CreatedAt:   time.Now(),
	}
	if err := s.DB.Create(&customer).Error; err != nil {
		return 0, err
	}
	return customer.ID, nil
}

func (s *SeedService) insertEmployee(fullName, role string) (uint, error) {
	var existing models.Employee
	err := s.DB.Where("full_name = ? AND role = ?", fullName, role).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	employee := models.Employee{FullName: fullName, Role: role}
	if err := s.DB.Create(&employee).Error; err != nil {
		return 0, err
	}
	return employee.ID, nil
}

func (s *SeedService) insertProduct(name, productType string, price decimal.Decimal) (uint, error) {
	var existing models.Product
	err := s.DB.Where("product_name = ? AND price_per_unit = ?", name, price).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	product := models.Product{ProductName: name, ProductType: productType, PricePerUnit: price}
	if err := s.DB.Create(&product).Error; err != nil {
		return 0, err
	}
	return product.ID, nil
}

func (s *SeedService) insertOrder(customerID uint, when time.Time, payment string, total decimal.Decimal, status string) (uint, error) {
	order := models.Order{
		CustomerID:    customerID,
		OrderDateTime: when,
		PaymentMethod: payment,
		TotalAmount:   total,
		Status:        status,
	}
	if err := s.DB.Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

func (s *SeedService) insertOrderDetail(orderID, productID uint, quantity int) error {
	var product models.Product
	if err := s.DB.First(&product, productID).Error; err != nil {
		return err
	}

	detail := models.OrderDetail{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		SubTotal:  product.PricePerUnit.Mul(decimal.NewFromInt(int64(quantity))),
	}
	return s.DB.Create(&detail).Error
}
