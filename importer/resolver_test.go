package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryawidjaya/gasstation-app/models"
)

func testRecord(phone string) OrderRecord {
	rec, err := ParseRecord([]string{"1", "John Doe", phone, "john@example.com", "B 1 X", "2024-05-01 09:30:00", "Cash", "10.00", "Completed"})
	if err != nil {
		panic(err)
	}
	return rec
}

func TestResolveCreatesThenReuses(t *testing.T) {
	db := newTestDB(t)
	resolver := NewCustomerResolver(db)

	id1, created, err := resolver.Resolve(testRecord("555-1"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, id1)

	id2, created, err := resolver.Resolve(testRecord("555-1"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, id1, id2)

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveKeyedOnPhoneNotEmail(t *testing.T) {
	db := newTestDB(t)
	resolver := NewCustomerResolver(db)

	first := testRecord("555-1")
	id1, _, err := resolver.Resolve(first)
	require.NoError(t, err)

	// Same phone, entirely different name and email: still the same customer.
	second := first
	second.FullName = "Somebody Else"
	second.Email = "else@example.com"
	id2, created, err := resolver.Resolve(second)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, id1, id2)

	// Existing rows are never overwritten.
	var stored models.Customer
	require.NoError(t, db.First(&stored, id1).Error)
	assert.Equal(t, "John Doe", stored.FullName)
	assert.Equal(t, "john@example.com", stored.Email)
}

func TestResolveDistinctPhones(t *testing.T) {
	db := newTestDB(t)
	resolver := NewCustomerResolver(db)

	id1, _, err := resolver.Resolve(testRecord("555-1"))
	require.NoError(t, err)
	id2, created, err := resolver.Resolve(testRecord("555-2"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, id1, id2)
}

func TestResolveUnknownPhonesCollapse(t *testing.T) {
	db := newTestDB(t)
	resolver := NewCustomerResolver(db)

	id1, _, err := resolver.Resolve(testRecord(""))
	require.NoError(t, err)
	id2, created, err := resolver.Resolve(testRecord("   "))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, id1, id2)
}
