// Package export writes parsed statements in the formats the CLI offers.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paragon-dev/paragon/internal/id"
	"github.com/paragon-dev/paragon/internal/model"
)

// Header is the CSV header for exported transactions.
const Header = "id,date,merchant,amount,forced_category"

const (
	numFields    = 5
	dateFormat   = "2006-01-02"
	colID        = 0
	colDate      = 1
	colMerchant  = 2
	colAmount    = 3
	colForcedCat = 4
)

// Row is an exported transaction with its fingerprint.
type Row struct {
	ID uuid.UUID
	model.ParsedTransaction
}

// Rows pairs transactions with the IDs id.Assign gives them.
func Rows(bank model.BankFormat, txns []model.ParsedTransaction) []Row {
	ids := id.Assign(bank, txns)
	rows := make([]Row, len(txns))
	for i, txn := range txns {
		rows[i] = Row{ID: ids[i], ParsedTransaction: txn}
	}
	return rows
}

// WriteTransactions writes txns as CSV, header included.
func WriteTransactions(w io.Writer, bank model.BankFormat, txns []model.ParsedTransaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range Rows(bank, txns) {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadTransactions reads rows written by WriteTransactions.
func ReadTransactions(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// MarshalRow converts a Row to a CSV record.
func MarshalRow(row Row) []string {
	rec := make([]string, numFields)
	rec[colID] = row.ID.String()
	rec[colDate] = row.Date
	rec[colMerchant] = row.Merchant
	rec[colAmount] = row.Amount.StringFixed(2)
	rec[colForcedCat] = string(row.ForcedCategory)
	return rec
}

// UnmarshalRow converts a CSV record to a Row.
func UnmarshalRow(record []string) (Row, error) {
	if len(record) != numFields {
		return Row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	txnID, err := id.Parse(record[colID])
	if err != nil {
		return Row{}, err
	}

	if _, err := time.Parse(dateFormat, record[colDate]); err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return Row{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}
	if !amount.IsPositive() {
		return Row{}, fmt.Errorf("amount %q is not positive", record[colAmount])
	}

	return Row{
		ID: txnID,
		ParsedTransaction: model.ParsedTransaction{
			Date:           record[colDate],
			Merchant:       record[colMerchant],
			Amount:         amount,
			ForcedCategory: model.Category(record[colForcedCat]),
		},
	}, nil
}
