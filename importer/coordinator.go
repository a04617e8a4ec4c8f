package importer

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aryawidjaya/gasstation-app/models"
	"github.com/aryawidjaya/gasstation-app/utils"
)

// BatchSize is the fixed import window over the source sheet.
const BatchSize = 100

// Summary aggregates one import run.
type Summary struct {
	OrdersInserted int `json:"orders_inserted"`
	NewCustomers   int `json:"new_customers"`
}

// BatchResult is a single-batch import outcome plus the customer read-back
// listing for the same batch number. The listing windows the customers
// table, not the source sheet, so it usually does not contain the customers
// this batch just created.
type BatchResult struct {
	Summary
	Customers []models.Customer `json:"customers"`
}

// Coordinator drives full and single-batch imports: read, normalize, then
// resolve-and-insert each record in source order. Each store call is its
// own unit of work, so a mid-run failure leaves earlier records committed.
type Coordinator struct {
	DB       *gorm.DB
	Reader   Reader
	resolver *CustomerResolver
	inserter *OrderInserter
	viewer   *CustomerViewer
}

func NewCoordinator(db *gorm.DB) *Coordinator {
	return &Coordinator{
		DB:       db,
		resolver: NewCustomerResolver(db),
		inserter: NewOrderInserter(db),
		viewer:   NewCustomerViewer(db),
	}
}

// ImportAll imports every record in the sheet.
func (co *Coordinator) ImportAll(path string) (Summary, error) {
	records, err := co.loadRecords(path)
	if err != nil {
		return Summary{}, err
	}

	sum, err := co.runRecords(records)
	co.logRun(path, nil, sum, err)
	if err != nil {
		return Summary{}, err
	}

	utils.InfoLogger.Printf("Import of %s finished: %d orders, %d new customers",
		path, sum.OrdersInserted, sum.NewCustomers)
	return sum, nil
}

// ImportBatch imports the 1-based batchNumber window of the sheet and, on
// success, reads back the customers table windowed by the same number.
func (co *Coordinator) ImportBatch(path string, batchNumber int) (BatchResult, error) {
	if batchNumber < 1 {
		return BatchResult{}, ErrBatchOutOfRange
	}

	records, err := co.loadRecords(path)
	if err != nil {
		return BatchResult{}, err
	}

	start := (batchNumber - 1) * BatchSize
	if start >= len(records) {
		return BatchResult{}, ErrBatchOutOfRange
	}
	end := start + BatchSize
	if end > len(records) {
		end = len(records)
	}

	sum, err := co.runRecords(records[start:end])
	co.logRun(path, &batchNumber, sum, err)
	if err != nil {
		return BatchResult{}, err
	}

	utils.InfoLogger.Printf("Batch %d of %s finished: %d orders, %d new customers",
		batchNumber, path, sum.OrdersInserted, sum.NewCustomers)

	customers, err := co.viewer.ListBatch(batchNumber)
	if err != nil {
		// The import itself succeeded; an out-of-range read-back window
		// just means there is nothing to show for that page.
		if !errors.Is(err, ErrInvalidBatchNumber) {
			return BatchResult{}, err
		}
		customers = nil
	}

	return BatchResult{Summary: sum, Customers: customers}, nil
}

func (co *Coordinator) loadRecords(path string) ([]OrderRecord, error) {
	rows, err := co.Reader.Read(path)
	if err != nil {
		return nil, err
	}
	return ParseRecords(rows)
}

func (co *Coordinator) runRecords(records []OrderRecord) (Summary, error) {
	var sum Summary
	for _, rec := range records {
		customerID, created, err := co.resolver.Resolve(rec)
		if err != nil {
			return sum, err
		}
		if created {
			sum.NewCustomers++
		}
		if err := co.inserter.Insert(customerID, rec); err != nil {
			return sum, err
		}
		sum.OrdersInserted++
	}
	return sum, nil
}

// logRun writes the per-run ImportLog row. Best effort: a failed log write
// must not fail an import that already committed its rows.
func (co *Coordinator) logRun(path string, batch *int, sum Summary, runErr error) {
	status := models.ImportStatusCompleted
	if runErr != nil {
		status = models.ImportStatusFailed
	}
	entry := models.ImportLog{
		RunID:          uuid.NewString(),
		SourceFile:     path,
		BatchNumber:    batch,
		OrdersInserted: sum.OrdersInserted,
		NewCustomers:   sum.NewCustomers,
		Status:         status,
		CreatedAt:      time.Now(),
	}
	if err := co.DB.Create(&entry).Error; err != nil {
		utils.ErrorLogger.Printf("failed to record import run %s: %v", entry.RunID, err)
	}
}
