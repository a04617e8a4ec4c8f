package importer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aryawidjaya/gasstation-app/models"
)

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestImportAllDedupsCustomers(t *testing.T) {
	db := newTestDB(t)
	co := NewCoordinator(db)

	// Three rows, phones 555-1 / "" / 555-1: the blank one becomes the
	// UNKNOWN customer, the other two share one customer.
	path := writeOrdersSheet(t, [][]interface{}{
		orderRow(1, "555-1"),
		orderRow(2, ""),
		orderRow(3, "555-1"),
	})

	sum, err := co.ImportAll(path)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.OrdersInserted)
	assert.Equal(t, 2, sum.NewCustomers)

	assert.EqualValues(t, 3, countRows(t, db, &models.Order{}))
	assert.EqualValues(t, 2, countRows(t, db, &models.Customer{}))

	var unknown models.Customer
	require.NoError(t, db.Where("phone_number = ?", UnknownPhone).First(&unknown).Error)
}

func TestReimportDuplicatesOrdersNotCustomers(t *testing.T) {
	db := newTestDB(t)
	co := NewCoordinator(db)
	path := writeOrdersSheet(t, [][]interface{}{
		orderRow(1, "555-1"),
		orderRow(2, "555-2"),
	})

	_, err := co.ImportAll(path)
	require.NoError(t, err)

	sum, err := co.ImportAll(path)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.OrdersInserted)
	assert.Equal(t, 0, sum.NewCustomers)

	assert.EqualValues(t, 4, countRows(t, db, &models.Order{}))
	assert.EqualValues(t, 2, countRows(t, db, &models.Customer{}))

	// Every order points at the customer holding its phone number.
	var orders []models.Order
	require.NoError(t, db.Preload("Customer").Find(&orders).Error)
	for _, o := range orders {
		assert.NotZero(t, o.CustomerID)
		assert.Equal(t, o.CustomerID, o.Customer.ID)
	}
}

func TestImportBatchWindows(t *testing.T) {
	db := newTestDB(t)
	co := NewCoordinator(db)

	rows := make([][]interface{}, 0, 250)
	for i := 1; i <= 250; i++ {
		rows = append(rows, orderRow(i, fmt.Sprintf("555-%04d", i)))
	}
	path := writeOrdersSheet(t, rows)

	result, err := co.ImportBatch(path, 3)
	require.NoError(t, err)
	assert.Equal(t, 50, result.OrdersInserted)
	assert.Equal(t, 50, result.NewCustomers)

	// Only records 201..250 were touched.
	var first models.Customer
	require.NoError(t, db.Order("id ASC").First(&first).Error)
	assert.Equal(t, "555-0201", first.PhoneNumber)

	_, err = co.ImportBatch(path, 4)
	assert.ErrorIs(t, err, ErrBatchOutOfRange)

	_, err = co.ImportBatch(path, 0)
	assert.ErrorIs(t, err, ErrBatchOutOfRange)
}

func TestImportBatchReadBackListing(t *testing.T) {
	db := newTestDB(t)
	co := NewCoordinator(db)
	path := writeOrdersSheet(t, [][]interface{}{
		orderRow(1, "555-1"),
		orderRow(2, "555-2"),
	})

	// Batch 1 of the sheet; read-back windows the customers table by the
	// same batch number.
	result, err := co.ImportBatch(path, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, result.OrdersInserted)
	require.Len(t, result.Customers, 2)
	assert.Equal(t, "555-1", result.Customers[0].PhoneNumber)
}

func TestImportAbortsOnInvalidField(t *testing.T) {
	db := newTestDB(t)
	co := NewCoordinator(db)

	bad := orderRow(2, "555-2")
	bad[7] = "not-a-price"
	path := writeOrdersSheet(t, [][]interface{}{
		orderRow(1, "555-1"),
		bad,
	})

	_, err := co.ImportAll(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidField)

	// Normalization aborts before any store work happens.
	assert.EqualValues(t, 0, countRows(t, db, &models.Order{}))
	assert.EqualValues(t, 0, countRows(t, db, &models.Customer{}))
}

func TestImportWritesRunLog(t *testing.T) {
	db := newTestDB(t)
	co := NewCoordinator(db)
	path := writeOrdersSheet(t, [][]interface{}{orderRow(1, "555-1")})

	_, err := co.ImportAll(path)
	require.NoError(t, err)

	_, err = co.ImportBatch(path, 1)
	require.NoError(t, err)

	var logs []models.ImportLog
	require.NoError(t, db.Order("id ASC").Find(&logs).Error)
	require.Len(t, logs, 2)

	assert.Equal(t, models.ImportStatusCompleted, logs[0].Status)
	assert.Nil(t, logs[0].BatchNumber)
	assert.NotEmpty(t, logs[0].RunID)

	require.NotNil(t, logs[1].BatchNumber)
	assert.Equal(t, 1, *logs[1].BatchNumber)
	assert.Equal(t, 1, logs[1].OrdersInserted)
}

func TestImportFailureLogsFailedRun(t *testing.T) {
	db := newTestDB(t)
	co := NewCoordinator(db)
	path := writeOrdersSheet(t, [][]interface{}{orderRow(1, "555-1")})

	// Losing the orders table mid-flight makes the order insert fail after
	// the customer was already resolved.
	require.NoError(t, db.Migrator().DropTable(&models.Order{}))

	_, err := co.ImportAll(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)

	var logs []models.ImportLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ImportStatusFailed, logs[0].Status)
	assert.Equal(t, 0, logs[0].OrdersInserted)
	// The customer insert preceded the failure and stays committed.
	assert.Equal(t, 1, logs[0].NewCustomers)
	assert.EqualValues(t, 1, countRows(t, db, &models.Customer{}))
}

func TestImportMissingSource(t *testing.T) {
	db := newTestDB(t)
	co := NewCoordinator(db)

	_, err := co.ImportAll("no-such-file.xlsx")
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.EqualValues(t, 0, countRows(t, db, &models.ImportLog{}))
}
