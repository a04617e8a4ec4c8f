package importer

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// UnknownPhone substitutes a missing phone number. It is the only
// defaulting rule in the whole pipeline: records without a phone all
// deduplicate onto the same "UNKNOWN" customer.
const UnknownPhone = "UNKNOWN"

// OrderRecord is one normalized spreadsheet row. ExternalID is the source
// system's order id; it is never reused as the persisted order identity.
type OrderRecord struct {
	ExternalID    int
	FullName      string
	PhoneNumber   string
	Email         string
	VehicleNumber string
	OrderDateTime time.Time
	PaymentMethod string
	TotalAmount   decimal.Decimal
	Status        string
}

// Column layout of the source sheet.
const (
	colOrderID = iota
	colFullName
	colPhone
	colEmail
	colVehicle
	colDateTime
	colPayment
	colTotal
	colStatus
)

// Date layouts accepted for the order timestamp. excelize hands back
// formatted strings, so the exact shape depends on the cell style.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
	"01-02-06 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"02/01/2006 15:04",
}

// ParseRecord coerces one raw row into an OrderRecord. Cells past the end
// of a short row read as empty strings; extra cells are ignored.
func ParseRecord(row []string) (OrderRecord, error) {
	id, err := strconv.Atoi(strings.TrimSpace(cell(row, colOrderID)))
	if err != nil {
		return OrderRecord{}, &InvalidFieldError{Column: colOrderID, Field: "order_id", Value: cell(row, colOrderID), cause: err}
	}

	phone := strings.TrimSpace(cell(row, colPhone))
	if phone == "" {
		phone = UnknownPhone
	}

	when, err := parseDateTime(cell(row, colDateTime))
	if err != nil {
		return OrderRecord{}, &InvalidFieldError{Column: colDateTime, Field: "order_date_time", Value: cell(row, colDateTime), cause: err}
	}

	total, err := parseAmount(cell(row, colTotal))
	if err != nil {
		return OrderRecord{}, &InvalidFieldError{Column: colTotal, Field: "total_amount", Value: cell(row, colTotal), cause: err}
	}

	return OrderRecord{
		ExternalID:    id,
		FullName:      cell(row, colFullName),
		PhoneNumber:   phone,
		Email:         cell(row, colEmail),
		VehicleNumber: cell(row, colVehicle),
		OrderDateTime: when,
		PaymentMethod: cell(row, colPayment),
		TotalAmount:   total,
		Status:        cell(row, colStatus),
	}, nil
}

// ParseRecords normalizes the whole sheet in order. The first bad cell
// aborts the pass; the returned error names the spreadsheet row (header is
// row 1) so the operator can fix the file.
func ParseRecords(rows [][]string) ([]OrderRecord, error) {
	records := make([]OrderRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := ParseRecord(row)
		if err != nil {
			var fieldErr *InvalidFieldError
			if errors.As(err, &fieldErr) {
				fieldErr.Row = i + 2
			}
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseDateTime(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseAmount(value string) (decimal.Decimal, error) {
	// Tolerate thousands separators the way exported sheets write them.
	v := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	return decimal.NewFromString(v)
}
