package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/transform"
)

// Reader loads a tabular source into raw rows. xlsx workbooks need no
// codepage; Codepage only applies to delimited text exports of legacy
// spreadsheets and falls back to DefaultCodepage when empty.
type Reader struct {
	Codepage string
}

// Read opens the file at path and returns its data rows in sheet order.
// Row 0 of the source is the header and is skipped.
func (r *Reader) Read(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return r.readWorkbook(path)
	case ".csv", ".txt":
		return r.readDelimited(path)
	default:
		// Binary .xls lands here too; nothing in our stack decodes it.
		return nil, fmt.Errorf("%w: unsupported source format %q", ErrMalformedSource, filepath.Ext(path))
	}
}

// ReadRows is the plain-function form of Read with the default codepage.
func ReadRows(path string) ([][]string, error) {
	r := Reader{}
	return r.Read(path)
}

func (r *Reader) readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformedSource)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	return skipHeader(rows), nil
}

func (r *Reader) readDelimited(path string) ([][]string, error) {
	enc, err := lookupCodepage(r.Codepage)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(transform.NewReader(f, enc.NewDecoder()))
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}
	return skipHeader(rows), nil
}

func skipHeader(rows [][]string) [][]string {
	if len(rows) == 0 {
		return rows
	}
	return rows[1:]
}
