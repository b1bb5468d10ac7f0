package id

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paragon-dev/paragon/internal/model"
)

func txn(date, merchant, amount string) model.ParsedTransaction {
	return model.ParsedTransaction{
		Date:     date,
		Merchant: merchant,
		Amount:   decimal.RequireFromString(amount),
	}
}

func TestKey(t *testing.T) {
	got := Key(model.BankMBank, txn("2024-01-15", "Żabka", "12.5"))
	assert.Equal(t, "mbank|2024-01-15|Żabka|12.50", got)
}

func TestKey_IgnoresForcedCategory(t *testing.T) {
	a := txn("2024-01-22", "Jakdojade", "4.40")
	b := a
	b.ForcedCategory = model.CategoryTransport
	assert.Equal(t, Key(model.BankMillennium, a), Key(model.BankMillennium, b))
}

func TestFingerprint_Stable(t *testing.T) {
	a := Fingerprint(model.BankZen, txn("2024-12-01", "Lidl", "25.50"))
	b := Fingerprint(model.BankZen, txn("2024-12-01", "Lidl", "25.5"))
	assert.Equal(t, a, b)
	assert.Equal(t, 5, int(a.Version()))
}

func TestFingerprint_DependsOnBank(t *testing.T) {
	x := txn("2024-12-01", "Lidl", "25.50")
	assert.NotEqual(t, Fingerprint(model.BankZen, x), Fingerprint(model.BankRevolut, x))
}

func TestAssign(t *testing.T) {
	txns := []model.ParsedTransaction{
		txn("2024-01-15", "Żabka", "12.50"),
		txn("2024-01-15", "Biedronka", "50.00"),
		txn("2024-01-15", "Żabka", "12.50"),
	}

	ids := Assign(model.BankMBank, txns)
	require.Len(t, ids, 3)
	assert.Equal(t, Fingerprint(model.BankMBank, txns[0]), ids[0])
	assert.NotEqual(t, ids[0], ids[2])
	assert.NotEqual(t, ids[0], ids[1])

	again := Assign(model.BankMBank, txns)
	assert.Equal(t, ids, again)
}

func TestAssign_Empty(t *testing.T) {
	assert.Empty(t, Assign(model.BankUnknown, nil))
}

func TestParse(t *testing.T) {
	want := Fingerprint(model.BankING, txn("2024-02-01", "Rossmann", "23.97"))
	got, err := Parse(want.String())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParse_Errors(t *testing.T) {
	for _, input := range []string{"", "not-a-uuid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"} {
		_, err := Parse(input)
		assert.Error(t, err, "expected error for input: %s", input)
	}
}
