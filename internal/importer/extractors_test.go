package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paragon-dev/paragon/internal/model"
)

type wantTxn struct {
	date, merchant, amount string
	forced                 model.Category
}

func assertTransactions(t *testing.T, want []wantTxn, got []model.ParsedTransaction) {
	t.Helper()
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w.date, got[i].Date, "row %d date", i)
		assert.Equal(t, w.merchant, got[i].Merchant, "row %d merchant", i)
		assert.Equal(t, w.amount, got[i].Amount.StringFixed(2), "row %d amount", i)
		assert.Equal(t, w.forced, got[i].ForcedCategory, "row %d forced category", i)
	}
}

func TestMillenniumExtractor(t *testing.T) {
	txns, stats := (&MillenniumExtractor{}).Extract(readFixture(t, "millennium.csv"))

	assertTransactions(t, []wantTxn{
		{"2024-01-15", "Biedronka", "50.00", ""},
		{"2024-01-19", "Żabka", "12.49", ""},
		{"2024-01-20", "Xtb", "1000.00", model.CategoryInvestments},
		{"2024-01-22", "Jakdojade", "4.40", model.CategoryTransport},
	}, txns)

	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, map[model.SkipReason]int{
		model.SkipInternalTransfer: 1,
		model.SkipATMWithdrawal:    1,
		model.SkipNoAmount:         1,
		model.SkipCardPayment:      1,
	}, stats.Reasons)
}

func TestMillenniumExtractor_ShortRowIsOther(t *testing.T) {
	text := readFixture(t, "millennium.csv") + "\"PL61\",\"2024-01-30\",\"ZAKUP\"\n"
	_, stats := (&MillenniumExtractor{}).Extract(text)
	assert.Equal(t, 1, stats.Reasons[model.SkipOther])
	assert.Equal(t, 5, stats.Count)
}

func TestMBankExtractor(t *testing.T) {
	txns, stats := (&MBankExtractor{}).Extract(readFixture(t, "mbank.csv"))

	assertTransactions(t, []wantTxn{
		{"2024-01-15", "Zakup Przy Użyciu Karty Żabka", "12.50", ""},
		{"2024-01-16", "SPÓŁDZIELNIA MIESZKANIOWA", "650.00", ""},
		{"2024-01-20", "Zakup Przy Użyciu Karty Doładowanie Telefonu Play", "30.00", model.CategorySubscriptions},
	}, txns)

	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, map[model.SkipReason]int{
		model.SkipInternalTransfer: 1,
		model.SkipATMWithdrawal:    1,
		model.SkipOther:            1,
		model.SkipPending:          1,
	}, stats.Reasons)
}

func TestMBankExtractor_NoHeader(t *testing.T) {
	txns, stats := (&MBankExtractor{}).Extract("mBank S.A.;\n2024-01-01;x;-1,00;\n")
	assert.Empty(t, txns)
	assert.Equal(t, 0, stats.Count)
}

func TestINGExtractor(t *testing.T) {
	txns, stats := (&INGExtractor{}).Extract(readFixture(t, "ing.csv"))

	assertTransactions(t, []wantTxn{
		{"2024-02-01", "Rossmann", "23.97", ""},
		{"2024-02-04", "Koleo", "120.00", model.CategoryTransport},
	}, txns)

	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, map[model.SkipReason]int{
		model.SkipInternalTransfer: 1,
		model.SkipNoAmount:         1,
	}, stats.Reasons)
}

func TestINGExtractor_SignedAmountColumn(t *testing.T) {
	text := "\"Data transakcji\",\"Data waluty\",\"Opis\",\"Kontrahent\",\"Kwota\"\n" +
		"\"2024-02-01\",\"2024-02-01\",\"Zakupy\",\"HEBE 55\",\"-19,99\"\n" +
		"\"2024-02-02\",\"2024-02-02\",\"Zwrot\",\"HEBE 55\",\"19,99\"\n"

	txns, stats := (&INGExtractor{}).Extract(text)
	assertTransactions(t, []wantTxn{{"2024-02-01", "Hebe", "19.99", ""}}, txns)
	assert.Equal(t, map[model.SkipReason]int{model.SkipOther: 1}, stats.Reasons)
}

func TestRevolutExtractor(t *testing.T) {
	txns, stats := (&RevolutExtractor{}).Extract(readFixture(t, "revolut.csv"))

	assertTransactions(t, []wantTxn{
		{"2024-03-01", "Netflix", "43.00", ""},
		{"2024-03-04", "Uber Eats", "56.78", ""},
	}, txns)

	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, map[model.SkipReason]int{
		model.SkipOther:            1,
		model.SkipInternalTransfer: 1,
		model.SkipATMWithdrawal:    1,
		model.SkipNoAmount:         1,
	}, stats.Reasons)
}

func TestRevolutPLExtractor(t *testing.T) {
	txns, stats := (&RevolutPLExtractor{}).Extract(readFixture(t, "revolut_pl.csv"))

	assertTransactions(t, []wantTxn{
		{"2024-04-01", "Lidl", "87.35", ""},
		{"2024-04-06", "Opłata Za Plan Premium", "29.99", ""},
	}, txns)

	assert.Equal(t, 5, stats.Count)
	assert.Equal(t, map[model.SkipReason]int{
		model.SkipOther:         2,
		model.SkipPending:       1,
		model.SkipATMWithdrawal: 1,
		model.SkipNoAmount:      1,
	}, stats.Reasons)
}

const revolutPLHeader = "Rodzaj,Produkt,Data rozpoczęcia,Data zakończenia,Opis,Kwota,Opłata,Waluta,State,Saldo\n"

func TestRevolutPLExtractor_InternalTransfer(t *testing.T) {
	text := revolutPLHeader +
		"Przelew,Bieżące,2024-04-02 09:00:00,2024-04-02 09:00:01,Savings vault top-up,-50.00,0.00,PLN,ZAKOŃCZONO,1.00\n"

	txns, stats := (&RevolutPLExtractor{}).Extract(text)
	assert.Empty(t, txns)
	assert.Equal(t, map[model.SkipReason]int{model.SkipInternalTransfer: 1}, stats.Reasons)
}

func TestRevolutPLExtractor_WithdrawalByType(t *testing.T) {
	text := revolutPLHeader +
		"Bankomat,Bieżące,2024-04-04 10:00:00,2024-04-04 10:00:05,Euronet Warszawa,-100.00,0.00,PLN,ZAKOŃCZONO,762.65\n"

	txns, stats := (&RevolutPLExtractor{}).Extract(text)
	assert.Empty(t, txns)
	assert.Equal(t, map[model.SkipReason]int{model.SkipATMWithdrawal: 1}, stats.Reasons)
}

func TestParse_ForcedCategoryFromDescription(t *testing.T) {
	text := revolutPLHeader +
		"Płatność kartą,Bieżące,2024-04-08 09:00:00,2024-04-08 09:00:01,XTB S.A.,-500.00,0.00,PLN,ZAKOŃCZONO,432.66\n" +
		"Płatność kartą,Bieżące,2024-04-09 09:00:00,2024-04-09 09:00:01,Lidl,-10.00,0.00,PLN,ZAKOŃCZONO,422.66\n"

	res := Parse(text)
	require.Equal(t, model.BankRevolutPL, res.Bank)
	assertTransactions(t, []wantTxn{
		{"2024-04-08", "Xtb", "500.00", model.CategoryInvestments},
		{"2024-04-09", "Lidl", "10.00", ""},
	}, res.Transactions)
}

func TestZenExtractor(t *testing.T) {
	txns, stats := (&ZenExtractor{}).Extract(readFixture(t, "zen.csv"))

	assertTransactions(t, []wantTxn{
		{"2024-12-01", "Lidl", "25.50", ""},
		{"2024-12-03", "Amazon Eu Sarl", "199.99", ""},
		{"2024-12-31", "Jakdojade", "3.40", model.CategoryTransport},
	}, txns)

	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, map[model.SkipReason]int{
		model.SkipOther:         2,
		model.SkipATMWithdrawal: 1,
	}, stats.Reasons)
}

func TestZenExtractor_NoMarker(t *testing.T) {
	txns, stats := (&ZenExtractor{}).Extract("Account Statement\n1 Dec 2024,Card payment,LIDL,-1.00\n")
	assert.Empty(t, txns)
	assert.Equal(t, 0, stats.Count)
}

func TestZenMerchant(t *testing.T) {
	assert.Equal(t, "LIDL SKLEP WARSZAWA", zenMerchant("LIDL SKLEP WARSZAWA PL *1234"))
	assert.Equal(t, "SHOP", zenMerchant("SHOP **9876"))
	assert.Equal(t, "SHOP", zenMerchant("SHOP"))
	assert.Equal(t, "STACJA BP", zenMerchant("STACJA BP"))
	assert.Equal(t, "STACJA BP", zenMerchant("STACJA BP PL *4321"))
}

func TestGenericExtractor_Header(t *testing.T) {
	txns, stats := (&GenericExtractor{}).Extract(readFixture(t, "generic.csv"))

	assertTransactions(t, []wantTxn{
		{"2024-01-15", "Sklep Spożywczy Abc", "23.45", ""},
	}, txns)
	assert.Equal(t, map[model.SkipReason]int{
		model.SkipOther:         1,
		model.SkipATMWithdrawal: 1,
		model.SkipNoAmount:      1,
	}, stats.Reasons)
}

func TestGenericExtractor_Headerless(t *testing.T) {
	text := "2024-05-01,Kawiarnia Nowa,-12.00\n2024-05-02,Kiosk Ruch,-3.50\n"

	txns, stats := (&GenericExtractor{}).Extract(text)
	assertTransactions(t, []wantTxn{
		{"2024-05-01", "Kawiarnia Nowa", "12.00", ""},
		{"2024-05-02", "Kiosk Ruch", "3.50", ""},
	}, txns)
	assert.Equal(t, 0, stats.Count)
}

func TestGenericExtractor_NoUsableColumns(t *testing.T) {
	txns, stats := (&GenericExtractor{}).Extract("foo,bar\nbaz,qux\n")
	assert.Empty(t, txns)
	assert.Equal(t, map[model.SkipReason]int{model.SkipOther: 1}, stats.Reasons)
}

func TestRevolutExtractor_MalformedDateIsOther(t *testing.T) {
	text := "Completed Date,Description,Amount,Currency\n" +
		"2024-13-01 10:00:00,Netflix,-43.00,PLN\n" +
		"yesterday,Spotify,-19.99,PLN\n"

	txns, stats := (&RevolutExtractor{}).Extract(text)
	assert.Empty(t, txns)
	assert.Equal(t, map[model.SkipReason]int{model.SkipOther: 2}, stats.Reasons)
}
