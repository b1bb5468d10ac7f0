package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paragon-dev/paragon/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		amount string
		want   Decision
	}{
		{"purchase", "ZAKUP PRZY UŻYCIU KARTY", "-12,50", Decision{}},
		{"internal transfer", "PRZELEW WEWNĘTRZNY WYCHODZĄCY", "-100,00", Decision{true, model.SkipInternalTransfer}},
		{"own transfer", "Przelew własny", "-5.00", Decision{true, model.SkipInternalTransfer}},
		{"atm", "WYPŁATA Z BANKOMATU", "-200.00", Decision{true, model.SkipATMWithdrawal}},
		{"atm mbank", "WYPŁATA W BANKOMACIE", "-50,00", Decision{true, model.SkipATMWithdrawal}},
		{"atm english", "ATM withdrawal", "-20.00", Decision{true, model.SkipATMWithdrawal}},
		{"early card repayment", "Wcześniejsza spłata karty kredytowej", "-300.00", Decision{true, model.SkipCardPayment}},
		{"pending", "BLOKADA ŚRODKÓW", "-9.99", Decision{true, model.SkipPending}},
		{"credit", "ZWROT ZAKUPU", "15.00", Decision{true, model.SkipOther}},
		{"blank amount", "PRZELEW WEWNĘTRZNY", "", Decision{true, model.SkipNoAmount}},
		{"non numeric amount", "ZAKUP", "n/a", Decision{true, model.SkipNoAmount}},
		{"zero amount", "ZAKUP", "0,00", Decision{true, model.SkipNoAmount}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text, tt.amount))
		})
	}
}

func TestClassifyDebit(t *testing.T) {
	assert.True(t, ClassifyDebit("ZAKUP KARTĄ", "-50.00").Accepted())
	assert.True(t, ClassifyDebit("ZAKUP KARTĄ", "50.00").Accepted(), "sign is ignored in debit columns")
	assert.Equal(t, Decision{true, model.SkipNoAmount}, ClassifyDebit("PRZELEW WEWNĘTRZNY", ""))
	assert.Equal(t, Decision{true, model.SkipInternalTransfer}, ClassifyDebit("PRZELEW WEWNĘTRZNY", "-10.00"))
}

func TestText(t *testing.T) {
	assert.True(t, Text("Card payment").Accepted())
	assert.Equal(t, model.SkipATMWithdrawal, Text("Cash withdrawal").Reason)
}

func TestForcedCategory(t *testing.T) {
	tests := []struct {
		desc      string
		recipient string
		want      model.Category
	}{
		{"Przelew do XTB S.A.", "", model.CategoryInvestments},
		{"wpłata", "XTB S.A.", model.CategoryInvestments},
		{"xtb.com deposit", "", model.CategoryInvestments},
		{"JAKDOJADE BILET", "", model.CategoryTransport},
		{"ZTM WARSZAWA", "", model.CategoryTransport},
		{"Doładowanie telefonu 600123456", "", model.CategorySubscriptions},
		{"BIEDRONKA", "", ""},
		{"BIEDRONKA", "ZTM", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ForcedCategory(tt.desc, tt.recipient), "ForcedCategory(%q, %q)", tt.desc, tt.recipient)
	}
}
